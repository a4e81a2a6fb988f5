package handler

import (
	"net/http"

	"content-hub/internal/logger"
	"content-hub/internal/middleware"
	"content-hub/internal/model"
	"content-hub/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ auth *service.AuthService }

func NewAuthHandler(auth *service.AuthService) *AuthHandler { return &AuthHandler{auth: auth} }

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		logger.Warn("login.failed", "email", req.Email, "err", err)
		fail(c, err)
		return
	}

	token, err := middleware.IssueToken(u)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("login.ok", "uid", u.ID, "name", u.Name)
	c.JSON(http.StatusOK, model.LoginResponse{Token: token, User: u})
}

// Logout only records the event; tokens are stateless.
func (h *AuthHandler) Logout(c *gin.Context) {
	u := middleware.CurrentUser(c)
	h.auth.Logout(u)
	logger.Info("logout", "uid", u.ID)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}
