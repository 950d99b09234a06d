package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/application/order/usecases"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
	"github.com/linkdesk-io/linkdesk/internal/shared/sanitize"
	"github.com/linkdesk-io/linkdesk/internal/shared/utils"
)

type OrderHandler struct {
	createUC       *usecases.CreateOrderUseCase
	getUC          *usecases.GetOrderUseCase
	listUC         *usecases.ListOrdersUseCase
	updateUC       *usecases.UpdateOrderUseCase
	deleteUC       *usecases.DeleteOrderUseCase
	changeStatusUC *usecases.ChangeStatusUseCase
	assignUC       *usecases.AssignOrderUseCase
	addCommentUC   *usecases.AddCommentUseCase
	listCommentsUC *usecases.ListCommentsUseCase
	markCommentsUC *usecases.MarkCommentsReadUseCase
	logger         logger.Interface
}

func NewOrderHandler(
	createUC *usecases.CreateOrderUseCase,
	getUC *usecases.GetOrderUseCase,
	listUC *usecases.ListOrdersUseCase,
	updateUC *usecases.UpdateOrderUseCase,
	deleteUC *usecases.DeleteOrderUseCase,
	changeStatusUC *usecases.ChangeStatusUseCase,
	assignUC *usecases.AssignOrderUseCase,
	addCommentUC *usecases.AddCommentUseCase,
	listCommentsUC *usecases.ListCommentsUseCase,
	markCommentsUC *usecases.MarkCommentsReadUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		changeStatusUC: changeStatusUC,
		assignUC:       assignUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		markCommentsUC: markCommentsUC,
		logger:         logger,
	}
}

type createOrderRequest struct {
	DomainID   *uint  `json:"domain_id"`
	OrderType  string `json:"order_type" binding:"required"`
	AnchorText string `json:"anchor_text"`
	TargetURL  string `json:"target_url"`
	Notes      string `json:"notes"`
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateOrderCommand{
		Actor:      middleware.ActorFromContext(c),
		DomainID:   req.DomainID,
		OrderType:  req.OrderType,
		AnchorText: req.AnchorText,
		TargetURL:  req.TargetURL,
		Notes:      req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Order placed successfully")
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetOrderQuery{
		Actor:   middleware.ActorFromContext(c),
		OrderID: orderID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListOrdersQuery{
		Actor:     middleware.ActorFromContext(c),
		OrderType: c.Query("order_type"),
		Status:    c.Query("status"),
		UserID:    queryUint(c, "user_id"),
		Offset:    p.Offset(),
		Limit:     p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Orders, result.Total, p.Page, p.PageSize)
}

type updateOrderRequest struct {
	AnchorText    *string    `json:"anchor_text"`
	TargetURL     *string    `json:"target_url"`
	ContentTitle  *string    `json:"content_title"`
	ContentBody   *string    `json:"content_body"`
	Notes         *string    `json:"notes"`
	Status        *string    `json:"status"`
	AssignedTo    *uint      `json:"assigned_to"`
	DateCompleted *time.Time `json:"date_completed"`
}

// UpdateOrder handles PATCH /orders/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Placed content may carry markup, everything else is plain text.
	if req.ContentBody != nil {
		clean := sanitize.HTML(*req.ContentBody)
		req.ContentBody = &clean
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateOrderCommand{
		Actor:   middleware.ActorFromContext(c),
		OrderID: orderID,
		Update: authorization.OrderUpdate{
			AnchorText:    req.AnchorText,
			TargetURL:     req.TargetURL,
			ContentTitle:  req.ContentTitle,
			ContentBody:   req.ContentBody,
			Notes:         req.Notes,
			Status:        req.Status,
			AssignedTo:    req.AssignedTo,
			DateCompleted: req.DateCompleted,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order updated successfully", result)
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteOrderCommand{
		Actor:   middleware.ActorFromContext(c),
		OrderID: orderID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

type changeOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChangeStatus handles PATCH /orders/:id/status
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changeOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		Actor:   middleware.ActorFromContext(c),
		OrderID: orderID,
		Status:  req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order status updated", result)
}

type assignOrderRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

// AssignOrder handles POST /orders/:id/assign
func (h *OrderHandler) AssignOrder(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req assignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.assignUC.Execute(c.Request.Context(), usecases.AssignOrderCommand{
		Actor:      middleware.ActorFromContext(c),
		OrderID:    orderID,
		AssigneeID: req.AssigneeID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order assigned successfully", nil)
}

type addOrderCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment handles POST /orders/:id/comments
func (h *OrderHandler) AddComment(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addOrderCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:   middleware.ActorFromContext(c),
		OrderID: orderID,
		Content: sanitize.Text(req.Content),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ListComments handles GET /orders/:id/comments
func (h *OrderHandler) ListComments(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		Actor:   middleware.ActorFromContext(c),
		OrderID: orderID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkCommentsRead handles POST /orders/:id/comments/read
func (h *OrderHandler) MarkCommentsRead(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markCommentsUC.Execute(c.Request.Context(), usecases.MarkCommentsReadCommand{
		Actor:   middleware.ActorFromContext(c),
		OrderID: orderID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
