package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/application/invoice/usecases"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
	"github.com/linkdesk-io/linkdesk/internal/shared/utils"
)

type InvoiceHandler struct {
	createUC   *usecases.CreateInvoiceUseCase
	getUC      *usecases.GetInvoiceUseCase
	listUC     *usecases.ListInvoicesUseCase
	markPaidUC *usecases.MarkInvoicePaidUseCase
	cancelUC   *usecases.CancelInvoiceUseCase
	logger     logger.Interface
}

func NewInvoiceHandler(
	createUC *usecases.CreateInvoiceUseCase,
	getUC *usecases.GetInvoiceUseCase,
	listUC *usecases.ListInvoicesUseCase,
	markPaidUC *usecases.MarkInvoicePaidUseCase,
	cancelUC *usecases.CancelInvoiceUseCase,
	logger logger.Interface,
) *InvoiceHandler {
	return &InvoiceHandler{
		createUC:   createUC,
		getUC:      getUC,
		listUC:     listUC,
		markPaidUC: markPaidUC,
		cancelUC:   cancelUC,
		logger:     logger,
	}
}

type createInvoiceRequest struct {
	UserID      uint      `json:"user_id" binding:"required"`
	AmountCents int64     `json:"amount_cents" binding:"required"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	Notes       string    `json:"notes"`
}

// CreateInvoice handles POST /invoices
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateInvoiceCommand{
		Actor:       middleware.ActorFromContext(c),
		UserID:      req.UserID,
		AmountCents: req.AmountCents,
		DueDate:     req.DueDate,
		Notes:       req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Invoice issued successfully")
}

// GetInvoice handles GET /invoices/:id
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetInvoiceQuery{
		Actor:     middleware.ActorFromContext(c),
		InvoiceID: invoiceID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListInvoices handles GET /invoices
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListInvoicesQuery{
		Actor:          middleware.ActorFromContext(c),
		UserID:         queryUint(c, "user_id"),
		OrganizationID: queryUint(c, "organization_id"),
		Status:         c.Query("status"),
		Offset:         p.Offset(),
		Limit:          p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Invoices, result.Total, p.Page, p.PageSize)
}

// MarkPaid handles POST /invoices/:id/pay
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	invoiceID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markPaidUC.Execute(c.Request.Context(), usecases.MarkInvoicePaidCommand{
		Actor:     middleware.ActorFromContext(c),
		InvoiceID: invoiceID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoice marked as paid", result)
}

// Cancel handles POST /invoices/:id/cancel
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	invoiceID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), usecases.CancelInvoiceCommand{
		Actor:     middleware.ActorFromContext(c),
		InvoiceID: invoiceID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoice cancelled", nil)
}
