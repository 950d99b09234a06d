package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/handlers"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(router gin.IRouter, config *UserRouteConfig) {
	users := router.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		users.POST("",
			config.AuthMiddleware.RequireAdmin(),
			config.UserHandler.CreateUser)
		users.GET("",
			config.AuthMiddleware.RequireAdmin(),
			config.UserHandler.ListUsers)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		users.GET("/me", config.UserHandler.GetProfile)

		// Manager assignment endpoints
		users.POST("/:id/assignments",
			config.AuthMiddleware.RequireAdmin(),
			config.UserHandler.AssignManager)
		users.DELETE("/:id/assignments/:userId",
			config.AuthMiddleware.RequireAdmin(),
			config.UserHandler.RevokeManager)
		users.GET("/:id/managed",
			config.AuthMiddleware.RequireManager(),
			config.UserHandler.ListManagedUsers)
		users.POST("/:id/password", config.UserHandler.ChangePassword)

		// Generic parameterized routes (must come LAST)
		users.GET("/:id", config.UserHandler.GetUser)
		users.PATCH("/:id", config.UserHandler.UpdateUser)
		users.DELETE("/:id", config.UserHandler.DeleteUser)
	}
}
