package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/satriadika/auth-service/internal/interface/middleware"
	"github.com/satriadika/auth-service/pkg/response"
)

// AdminHandler serves routes behind the auth gate. It only reads the
// identity the middleware attached; it never parses tokens itself.
type AdminHandler struct {
	Logger *logrus.Logger
}

func NewAdminHandler(logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Logger: logger}
}

// Overview GET /api/admin
func (h *AdminHandler) Overview(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)
	role := c.GetString(middleware.CtxRoleKey)

	resp := response.Success(c, http.StatusOK, gin.H{
		"username": username,
		"role":     role,
	}, "welcome to the admin area", nil)
	c.JSON(resp.Status, resp)
}
