package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/handlers"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
)

type OrderRouteConfig struct {
	OrderHandler   *handlers.OrderHandler
	ContentHandler *handlers.ContentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupOrderRoutes(router gin.IRouter, config *OrderRouteConfig) {
	orders := router.Group("/orders")
	orders.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		orders.POST("", config.OrderHandler.CreateOrder)
		orders.GET("", config.OrderHandler.ListOrders)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		orders.PATCH("/:id/status", config.OrderHandler.ChangeStatus)
		orders.POST("/:id/assign",
			config.AuthMiddleware.RequireAdmin(),
			config.OrderHandler.AssignOrder)
		orders.POST("/:id/comments", config.OrderHandler.AddComment)
		orders.GET("/:id/comments", config.OrderHandler.ListComments)
		orders.POST("/:id/comments/read", config.OrderHandler.MarkCommentsRead)
		orders.POST("/:id/draft",
			config.AuthMiddleware.RequireAdmin(),
			config.ContentHandler.GenerateDraft)

		// Generic parameterized routes (must come LAST)
		orders.GET("/:id", config.OrderHandler.GetOrder)
		orders.PATCH("/:id", config.OrderHandler.UpdateOrder)
		orders.DELETE("/:id", config.OrderHandler.DeleteOrder)
	}
}
