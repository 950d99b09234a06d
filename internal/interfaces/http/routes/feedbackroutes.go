package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/handlers"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
)

type FeedbackRouteConfig struct {
	FeedbackHandler *handlers.FeedbackHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupFeedbackRoutes(router gin.IRouter, config *FeedbackRouteConfig) {
	feedback := router.Group("/feedback")
	feedback.Use(config.AuthMiddleware.RequireAuth())
	{
		// Campaign administration
		campaigns := feedback.Group("/campaigns")
		{
			campaigns.POST("",
				config.AuthMiddleware.RequireAdmin(),
				config.FeedbackHandler.CreateCampaign)
			campaigns.GET("",
				config.AuthMiddleware.RequireAdmin(),
				config.FeedbackHandler.ListCampaigns)
			campaigns.POST("/:id/questions",
				config.AuthMiddleware.RequireAdmin(),
				config.FeedbackHandler.AddQuestion)
			// Respondents read questions to fill in their survey.
			campaigns.GET("/:id/questions", config.FeedbackHandler.ListQuestions)
			campaigns.POST("/:id/generate",
				config.AuthMiddleware.RequireAdmin(),
				config.FeedbackHandler.GenerateRequests)
		}

		// Respondent endpoints (must come BEFORE /:id to avoid conflicts)
		feedback.GET("/mine", config.FeedbackHandler.ListMyFeedback)
		feedback.POST("/:id/submit", config.FeedbackHandler.SubmitFeedback)
	}
}
