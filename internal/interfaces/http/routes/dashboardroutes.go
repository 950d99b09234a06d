package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/handlers"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
)

type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupDashboardRoutes(router gin.IRouter, config *DashboardRouteConfig) {
	dashboard := router.Group("/dashboard")
	dashboard.Use(config.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("/summary", config.DashboardHandler.Summary)
	}
}
