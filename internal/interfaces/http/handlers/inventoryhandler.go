package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/application/inventory/usecases"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
	"github.com/linkdesk-io/linkdesk/internal/shared/utils"
)

type InventoryHandler struct {
	createUC *usecases.CreateDomainUseCase
	getUC    *usecases.GetDomainUseCase
	listUC   *usecases.ListDomainsUseCase
	updateUC *usecases.UpdateDomainUseCase
	deleteUC *usecases.DeleteDomainUseCase
	quoteUC  *usecases.QuoteDomainUseCase
	logger   logger.Interface
}

func NewInventoryHandler(
	createUC *usecases.CreateDomainUseCase,
	getUC *usecases.GetDomainUseCase,
	listUC *usecases.ListDomainsUseCase,
	updateUC *usecases.UpdateDomainUseCase,
	deleteUC *usecases.DeleteDomainUseCase,
	quoteUC *usecases.QuoteDomainUseCase,
	logger logger.Interface,
) *InventoryHandler {
	return &InventoryHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		quoteUC:  quoteUC,
		logger:   logger,
	}
}

type createDomainRequest struct {
	Name           string `json:"name" binding:"required,domainname"`
	Category       string `json:"category"`
	Language       string `json:"language"`
	GuestPostCents int64  `json:"guest_post_cents" binding:"required"`
	NicheEditCents int64  `json:"niche_edit_cents" binding:"required"`
	IsGlobal       bool   `json:"is_global"`
	OrganizationID *uint  `json:"organization_id"`
}

// CreateDomain handles POST /domains
func (h *InventoryHandler) CreateDomain(c *gin.Context) {
	var req createDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateDomainCommand{
		Actor:          middleware.ActorFromContext(c),
		Name:           req.Name,
		Category:       req.Category,
		Language:       req.Language,
		GuestPostCents: req.GuestPostCents,
		NicheEditCents: req.NicheEditCents,
		IsGlobal:       req.IsGlobal,
		OrganizationID: req.OrganizationID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Domain created successfully")
}

// GetDomain handles GET /domains/:id
func (h *InventoryHandler) GetDomain(c *gin.Context) {
	domainID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetDomainQuery{
		Actor:    middleware.ActorFromContext(c),
		DomainID: domainID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListDomains handles GET /domains
func (h *InventoryHandler) ListDomains(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListDomainsQuery{
		Actor:      middleware.ActorFromContext(c),
		Category:   c.Query("category"),
		MinRating:  queryInt(c, "min_rating"),
		MaxPriceGP: queryInt64(c, "max_price_gp"),
		MaxPriceNE: queryInt64(c, "max_price_ne"),
		Search:     c.Query("search"),
		Offset:     p.Offset(),
		Limit:      p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Domains, result.Total, p.Page, p.PageSize)
}

type updateDomainRequest struct {
	Category            *string `json:"category"`
	Language            *string `json:"language"`
	GuestPostCents      *int64  `json:"guest_post_cents"`
	NicheEditCents      *int64  `json:"niche_edit_cents"`
	MakeGlobal          bool    `json:"make_global"`
	ScopeToOrganization *uint   `json:"scope_to_organization"`
}

// UpdateDomain handles PATCH /domains/:id
func (h *InventoryHandler) UpdateDomain(c *gin.Context) {
	domainID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateDomainCommand{
		Actor:               middleware.ActorFromContext(c),
		DomainID:            domainID,
		Category:            req.Category,
		Language:            req.Language,
		GuestPostCents:      req.GuestPostCents,
		NicheEditCents:      req.NicheEditCents,
		MakeGlobal:          req.MakeGlobal,
		ScopeToOrganization: req.ScopeToOrganization,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Domain updated successfully", result)
}

// DeleteDomain handles DELETE /domains/:id
func (h *InventoryHandler) DeleteDomain(c *gin.Context) {
	domainID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteDomainCommand{
		Actor:    middleware.ActorFromContext(c),
		DomainID: domainID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// QuoteDomain handles GET /domains/:id/quote
func (h *InventoryHandler) QuoteDomain(c *gin.Context) {
	domainID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.quoteUC.Execute(c.Request.Context(), usecases.QuoteDomainQuery{
		Actor:     middleware.ActorFromContext(c),
		DomainID:  domainID,
		OrderType: c.Query("order_type"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
