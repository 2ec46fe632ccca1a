package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/satriadika/auth-service/internal/application"
	"github.com/satriadika/auth-service/internal/domain/entity"
	"github.com/satriadika/auth-service/pkg/response"
	"github.com/satriadika/auth-service/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"required,oneof=admin user"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// Register POST /api/register {username, password, role}
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	role, err := entity.ParseRole(req.Role)
	if err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"role": "must be one of: admin, user"})
		c.JSON(resp.Status, resp)
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Username, req.Password, role)
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			resp := response.Error[any](c, http.StatusConflict, "username already taken", nil)
			c.JSON(resp.Status, resp)
			return
		}
		resp := response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
		c.JSON(resp.Status, resp)
		return
	}

	h.Logger.WithFields(logrus.Fields{"username": u.Username, "role": u.Role, "ip": clientIP(c)}).Info("user registered")
	resp := response.Success(c, http.StatusOK, gin.H{
		"id":       u.ID,
		"username": u.Username,
		"role":     u.Role,
	}, "registered", nil)
	c.JSON(resp.Status, resp)
}

// Login POST /api/login {username, password}
// An unknown username and a wrong password produce byte-identical failures.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	token, exp, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			h.Logger.WithFields(logrus.Fields{"username": req.Username, "ip": clientIP(c)}).Warn("login rejected")
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			c.JSON(resp.Status, resp)
			return
		}
		resp := response.Error[any](c, http.StatusInternalServerError, "login failed", nil)
		c.JSON(resp.Status, resp)
		return
	}

	resp := response.Success(c, http.StatusOK, gin.H{"token": token}, "login successful", map[string]any{"expires_at": exp})
	c.JSON(resp.Status, resp)
}
