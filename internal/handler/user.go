package handler

import (
	"net/http"

	"expense-ledger/internal/auth"
	"expense-ledger/internal/middleware"
	"expense-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserHandler serves the current user's account.
type UserHandler struct {
	Auth *auth.Authority
	Log  logrus.FieldLogger
}

func NewUserHandler(a *auth.Authority, log logrus.FieldLogger) *UserHandler {
	return &UserHandler{Auth: a, Log: log}
}

type updateProfileReq struct {
	Name string `json:"name"`
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.Auth.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		util.Fail(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile renames the user. The response carries a new token since the
// name is part of its claims.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "invalid request body")
		return
	}

	user, token, err := h.Auth.UpdateProfile(c.Request.Context(), middleware.UserID(c), req.Name)
	if err != nil {
		util.Fail(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"user":    user,
		"token":   token,
	})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "invalid request body")
		return
	}

	uid := middleware.UserID(c)
	if err := h.Auth.ChangePassword(c.Request.Context(), uid, req.CurrentPassword, req.NewPassword); err != nil {
		util.Fail(c, h.Log, err)
		return
	}

	h.Log.WithField("user_id", uid).Info("password changed")
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
