package router

import (
	"github.com/satriadika/auth-service/internal/application"
	"github.com/satriadika/auth-service/internal/container"
	handlers "github.com/satriadika/auth-service/internal/interface/http"
	"github.com/satriadika/auth-service/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	svc := application.NewService(
		container.GetUserRepo(),
		container.GetJWT(),
		container.GetLogger(),
	)

	authHandler := handlers.NewAuthHandler(svc, container.GetLogger())
	adminHandler := handlers.NewAdminHandler(container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewAdminModule(adminHandler, container.GetJWT()))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
