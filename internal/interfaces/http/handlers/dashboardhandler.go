package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/application/dashboard/usecases"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
	"github.com/linkdesk-io/linkdesk/internal/shared/utils"
)

type DashboardHandler struct {
	summaryUC *usecases.SummaryUseCase
	logger    logger.Interface
}

func NewDashboardHandler(summaryUC *usecases.SummaryUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{summaryUC: summaryUC, logger: logger}
}

// Summary handles GET /dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	result, err := h.summaryUC.Execute(c.Request.Context(), usecases.SummaryQuery{
		Actor: middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
