package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/handlers"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
)

type InvoiceRouteConfig struct {
	InvoiceHandler *handlers.InvoiceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupInvoiceRoutes(router gin.IRouter, config *InvoiceRouteConfig) {
	invoices := router.Group("/invoices")
	invoices.Use(config.AuthMiddleware.RequireAuth())
	{
		invoices.POST("",
			config.AuthMiddleware.RequireAdmin(),
			config.InvoiceHandler.CreateInvoice)
		invoices.GET("", config.InvoiceHandler.ListInvoices)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		invoices.POST("/:id/pay",
			config.AuthMiddleware.RequireAdmin(),
			config.InvoiceHandler.MarkPaid)
		invoices.POST("/:id/cancel",
			config.AuthMiddleware.RequireAdmin(),
			config.InvoiceHandler.Cancel)

		// Generic parameterized routes (must come LAST)
		invoices.GET("/:id", config.InvoiceHandler.GetInvoice)
	}
}
