package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/handlers"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
)

type OrganizationRouteConfig struct {
	OrganizationHandler *handlers.OrganizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupOrganizationRoutes(router gin.IRouter, config *OrganizationRouteConfig) {
	orgs := router.Group("/organizations")
	orgs.Use(config.AuthMiddleware.RequireAuth())
	{
		orgs.POST("",
			config.AuthMiddleware.RequireAdmin(),
			config.OrganizationHandler.CreateOrganization)
		orgs.GET("",
			config.AuthMiddleware.RequireAdmin(),
			config.OrganizationHandler.ListOrganizations)

		// Members may read their own organization; the use case checks.
		orgs.GET("/:id", config.OrganizationHandler.GetOrganization)
		orgs.PATCH("/:id",
			config.AuthMiddleware.RequireAdmin(),
			config.OrganizationHandler.UpdateOrganization)
	}
}
