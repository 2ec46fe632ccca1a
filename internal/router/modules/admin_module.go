package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/satriadika/auth-service/internal/domain/entity"
	handlers "github.com/satriadika/auth-service/internal/interface/http"
	"github.com/satriadika/auth-service/internal/interface/middleware"
	"github.com/satriadika/auth-service/pkg/helpers"
)

type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	// The auth gate runs before any handler on this group; the role check
	// runs after it, on the claims it attached.
	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.JWT))
	admin.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/admin", m.Handler.Overview)
	}
}
