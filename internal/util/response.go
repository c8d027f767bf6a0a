package util

import (
	"net/http"

	"expense-ledger/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Error writes the {"message": ...} error body.
func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

// Fail maps err to its status and public message. Server errors are logged
// with their detail and never exposed.
func Fail(c *gin.Context, log logrus.FieldLogger, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).WithError(err).Error("request failed")
	}
	Error(c, status, apperr.Message(err))
}

// BadRequest reports a malformed request body.
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}
