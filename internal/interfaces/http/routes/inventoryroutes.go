package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/handlers"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
)

type InventoryRouteConfig struct {
	InventoryHandler *handlers.InventoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupInventoryRoutes(router gin.IRouter, config *InventoryRouteConfig) {
	domains := router.Group("/domains")
	domains.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter). Reads stay open; the
		// use cases scope results to what the actor may see.
		domains.POST("",
			config.AuthMiddleware.RequireRole(authorization.RoleInventoryManager),
			config.InventoryHandler.CreateDomain)
		domains.GET("", config.InventoryHandler.ListDomains)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		domains.GET("/:id/quote", config.InventoryHandler.QuoteDomain)

		// Generic parameterized routes (must come LAST)
		domains.GET("/:id", config.InventoryHandler.GetDomain)
		domains.PATCH("/:id",
			config.AuthMiddleware.RequireRole(authorization.RoleInventoryManager),
			config.InventoryHandler.UpdateDomain)
		domains.DELETE("/:id",
			config.AuthMiddleware.RequireAdmin(),
			config.InventoryHandler.DeleteDomain)
	}
}
