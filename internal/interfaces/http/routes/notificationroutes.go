package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/handlers"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(router gin.IRouter, config *NotificationRouteConfig) {
	notifications := router.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		notifications.GET("/unread-count", config.NotificationHandler.UnreadCount)
		notifications.POST("/read-all", config.NotificationHandler.MarkAllRead)

		notifications.POST("/:id/read", config.NotificationHandler.MarkRead)
	}
}
