package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/handlers"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

func SetupAuthRoutes(router gin.IRouter, config *AuthRouteConfig) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
	}
}
