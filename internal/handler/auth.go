package handler

import (
	"net/http"

	"expense-ledger/internal/auth"
	"expense-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	Auth *auth.Authority
	Log  logrus.FieldLogger
}

func NewAuthHandler(a *auth.Authority, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{Auth: a, Log: log}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "invalid request body")
		return
	}

	user, token, err := h.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		util.Fail(c, h.Log, err)
		return
	}

	h.Log.WithField("user_id", user.ID).Info("user registered")
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "invalid request body")
		return
	}

	user, token, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.Fail(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
