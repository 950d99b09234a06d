package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/handlers"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(router gin.IRouter, config *TicketRouteConfig) {
	tickets := router.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.POST("/close-all",
			config.AuthMiddleware.RequireAdmin(),
			config.TicketHandler.CloseAllOpen)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/close", config.TicketHandler.CloseTicket)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.GET("/:id/comments", config.TicketHandler.ListComments)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			config.AuthMiddleware.RequireAdmin(),
			config.TicketHandler.UpdateTicket)
	}
}
