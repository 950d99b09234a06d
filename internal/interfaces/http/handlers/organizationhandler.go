package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/application/organization/usecases"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
	"github.com/linkdesk-io/linkdesk/internal/shared/utils"
)

type OrganizationHandler struct {
	createUC *usecases.CreateOrganizationUseCase
	getUC    *usecases.GetOrganizationUseCase
	listUC   *usecases.ListOrganizationsUseCase
	updateUC *usecases.UpdateOrganizationUseCase
	logger   logger.Interface
}

func NewOrganizationHandler(
	createUC *usecases.CreateOrganizationUseCase,
	getUC *usecases.GetOrganizationUseCase,
	listUC *usecases.ListOrganizationsUseCase,
	updateUC *usecases.UpdateOrganizationUseCase,
	logger logger.Interface,
) *OrganizationHandler {
	return &OrganizationHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		logger:   logger,
	}
}

type createOrganizationRequest struct {
	Name    string `json:"name" binding:"required"`
	Website string `json:"website"`
}

// CreateOrganization handles POST /organizations
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req createOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateOrganizationCommand{
		Actor:   middleware.ActorFromContext(c),
		Name:    req.Name,
		Website: req.Website,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Organization created successfully")
}

// GetOrganization handles GET /organizations/:id
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	orgID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetOrganizationQuery{
		Actor:          middleware.ActorFromContext(c),
		OrganizationID: orgID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListOrganizations handles GET /organizations
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListOrganizationsQuery{
		Actor:  middleware.ActorFromContext(c),
		Offset: p.Offset(),
		Limit:  p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Organizations, result.Total, p.Page, p.PageSize)
}

type updateOrganizationRequest struct {
	Name        *string `json:"name"`
	Website     *string `json:"website"`
	PricingTier *string `json:"pricing_tier"`
}

// UpdateOrganization handles PATCH /organizations/:id
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	orgID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateOrganizationCommand{
		Actor:          middleware.ActorFromContext(c),
		OrganizationID: orgID,
		Name:           req.Name,
		Website:        req.Website,
		PricingTier:    req.PricingTier,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization updated successfully", result)
}
