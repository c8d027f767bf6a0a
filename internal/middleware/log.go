package middleware

import (
	"context"
	"time"

	"expense-ledger/internal/models"
	"expense-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger logs one line per request. Client errors log at warn and
// server errors at error.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if uid := UserID(c); uid != "" {
			entry = entry.WithField("user_id", uid)
		}

		switch {
		case status >= 500:
			entry.Error("request completed")
		case status >= 400:
			entry.Warn("request completed")
		default:
			entry.Info("request completed")
		}
	}
}

// AuditStore persists audit entries.
type AuditStore interface {
	Create(ctx context.Context, l *models.AuditLog) error
}

// Audit records method, path and status of authenticated requests. It must
// run after Auth. The path is encrypted when cipher is non-nil; request
// bodies are never recorded.
func Audit(store AuditStore, cipher *util.FieldCipher, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		uid := UserID(c)
		if uid == "" {
			return
		}

		path, err := cipher.EncryptString(c.Request.URL.Path)
		if err != nil {
			log.WithError(err).Warn("encrypt audit path")
			return
		}

		entry := &models.AuditLog{
			UserID:    uid,
			Method:    c.Request.Method,
			PathEnc:   path,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: truncate(c.Request.UserAgent(), 255),
		}
		if err := store.Create(context.WithoutCancel(c.Request.Context()), entry); err != nil {
			log.WithError(err).WithField("user_id", uid).Warn("write audit log")
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
