package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/application/content/usecases"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
	"github.com/linkdesk-io/linkdesk/internal/shared/utils"
)

type ContentHandler struct {
	generateUC *usecases.GenerateCopyUseCase
	logger     logger.Interface
}

func NewContentHandler(generateUC *usecases.GenerateCopyUseCase, logger logger.Interface) *ContentHandler {
	return &ContentHandler{generateUC: generateUC, logger: logger}
}

type generateDraftRequest struct {
	Title string `json:"title"`
	Notes string `json:"notes"`
}

// GenerateDraft handles POST /orders/:id/draft
func (h *ContentHandler) GenerateDraft(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req generateDraftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result, err := h.generateUC.Execute(c.Request.Context(), usecases.GenerateCopyCommand{
		Actor:   middleware.ActorFromContext(c),
		OrderID: orderID,
		Title:   req.Title,
		Notes:   req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft generated", result)
}
