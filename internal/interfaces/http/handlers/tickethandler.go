package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/application/ticket/usecases"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
	"github.com/linkdesk-io/linkdesk/internal/shared/sanitize"
	"github.com/linkdesk-io/linkdesk/internal/shared/utils"
)

type TicketHandler struct {
	createUC       *usecases.CreateTicketUseCase
	getUC          *usecases.GetTicketUseCase
	listUC         *usecases.ListTicketsUseCase
	updateUC       *usecases.UpdateTicketUseCase
	closeUC        *usecases.CloseTicketUseCase
	closeAllUC     *usecases.CloseAllOpenUseCase
	addCommentUC   *usecases.AddCommentUseCase
	listCommentsUC *usecases.ListCommentsUseCase
	logger         logger.Interface
}

func NewTicketHandler(
	createUC *usecases.CreateTicketUseCase,
	getUC *usecases.GetTicketUseCase,
	listUC *usecases.ListTicketsUseCase,
	updateUC *usecases.UpdateTicketUseCase,
	closeUC *usecases.CloseTicketUseCase,
	closeAllUC *usecases.CloseAllOpenUseCase,
	addCommentUC *usecases.AddCommentUseCase,
	listCommentsUC *usecases.ListCommentsUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateUC:       updateUC,
		closeUC:        closeUC,
		closeAllUC:     closeAllUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		logger:         logger,
	}
}

type createTicketRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Priority string `json:"priority"`
	Message  string `json:"message" binding:"required"`
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Actor:    middleware.ActorFromContext(c),
		Subject:  sanitize.Text(req.Subject),
		Priority: req.Priority,
		Message:  sanitize.Text(req.Message),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Actor:    middleware.ActorFromContext(c),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Actor:      middleware.ActorFromContext(c),
		Status:     c.Query("status"),
		UserID:     queryUint(c, "user_id"),
		AssignedTo: queryUint(c, "assigned_to"),
		Offset:     p.Offset(),
		Limit:      p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, p.Page, p.PageSize)
}

type updateTicketRequest struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	AssignedTo *uint   `json:"assigned_to"`
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Actor:      middleware.ActorFromContext(c),
		TicketID:   ticketID,
		Status:     req.Status,
		Priority:   req.Priority,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

type closeTicketRequest struct {
	Rating *int `json:"rating"`
}

// CloseTicket handles POST /tickets/:id/close
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The body is optional; customers may attach a rating when closing.
	var req closeTicketRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result, err := h.closeUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		Actor:    middleware.ActorFromContext(c),
		TicketID: ticketID,
		Rating:   req.Rating,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed successfully", result)
}

// CloseAllOpen handles POST /tickets/close-all
func (h *TicketHandler) CloseAllOpen(c *gin.Context) {
	result, err := h.closeAllUC.Execute(c.Request.Context(), usecases.CloseAllOpenCommand{
		Actor: middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Open tickets closed", result)
}

type addTicketCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addTicketCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:    middleware.ActorFromContext(c),
		TicketID: ticketID,
		Content:  sanitize.Text(req.Content),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reply added successfully")
}

// ListComments handles GET /tickets/:id/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		Actor:    middleware.ActorFromContext(c),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
