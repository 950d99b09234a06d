package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/application/user/usecases"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
	"github.com/linkdesk-io/linkdesk/internal/shared/utils"
)

type UserHandler struct {
	createUserUC       *usecases.CreateUserUseCase
	getUserUC          *usecases.GetUserUseCase
	listUsersUC        *usecases.ListUsersUseCase
	updateUserUC       *usecases.UpdateUserUseCase
	deleteUserUC       *usecases.DeleteUserUseCase
	changePasswordUC   *usecases.ChangePasswordUseCase
	assignManagerUC    *usecases.AssignManagerUseCase
	revokeManagerUC    *usecases.RevokeManagerUseCase
	listManagedUsersUC *usecases.ListManagedUsersUseCase
	logger             logger.Interface
}

func NewUserHandler(
	createUserUC *usecases.CreateUserUseCase,
	getUserUC *usecases.GetUserUseCase,
	listUsersUC *usecases.ListUsersUseCase,
	updateUserUC *usecases.UpdateUserUseCase,
	deleteUserUC *usecases.DeleteUserUseCase,
	changePasswordUC *usecases.ChangePasswordUseCase,
	assignManagerUC *usecases.AssignManagerUseCase,
	revokeManagerUC *usecases.RevokeManagerUseCase,
	listManagedUsersUC *usecases.ListManagedUsersUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC:       createUserUC,
		getUserUC:          getUserUC,
		listUsersUC:        listUsersUC,
		updateUserUC:       updateUserUC,
		deleteUserUC:       deleteUserUC,
		changePasswordUC:   changePasswordUC,
		assignManagerUC:    assignManagerUC,
		revokeManagerUC:    revokeManagerUC,
		listManagedUsersUC: listManagedUsersUC,
		logger:             logger,
	}
}

type createUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	CompanyName    string `json:"company_name"`
	Role           string `json:"role" binding:"required"`
	OrganizationID uint   `json:"organization_id" binding:"required"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Actor:          middleware.ActorFromContext(c),
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		CompanyName:    req.CompanyName,
		Role:           req.Role,
		OrganizationID: req.OrganizationID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		Actor:  middleware.ActorFromContext(c),
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		Actor:  actor,
		UserID: actor.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Actor:          middleware.ActorFromContext(c),
		Role:           c.Query("role"),
		OrganizationID: queryUint(c, "organization_id"),
		ActiveOnly:     c.Query("active") == "true",
		Search:         c.Query("search"),
		Offset:         p.Offset(),
		Limit:          p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, p.Page, p.PageSize)
}

type updateUserRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	CompanyName    *string `json:"company_name"`
	Role           *string `json:"role"`
	OrganizationID *uint   `json:"organization_id"`
	Active         *bool   `json:"active"`
}

// UpdateUser handles PATCH /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		Actor:  middleware.ActorFromContext(c),
		UserID: userID,
		Update: authorization.UserUpdate{
			Name:           req.Name,
			Email:          req.Email,
			CompanyName:    req.CompanyName,
			Role:           req.Role,
			OrganizationID: req.OrganizationID,
			Active:         req.Active,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		Actor:  middleware.ActorFromContext(c),
		UserID: userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// ChangePassword handles POST /users/:id/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		Actor:           middleware.ActorFromContext(c),
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

type assignManagerRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// AssignManager handles POST /users/:id/assignments, where :id is the
// manager receiving the user.
func (h *UserHandler) AssignManager(c *gin.Context) {
	managerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req assignManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assignManagerUC.Execute(c.Request.Context(), usecases.AssignManagerCommand{
		Actor:     middleware.ActorFromContext(c),
		ManagerID: managerID,
		UserID:    req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User assigned successfully")
}

// RevokeManager handles DELETE /users/:id/assignments/:userId
func (h *UserHandler) RevokeManager(c *gin.Context) {
	managerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.revokeManagerUC.Execute(c.Request.Context(), usecases.RevokeManagerCommand{
		Actor:     middleware.ActorFromContext(c),
		ManagerID: managerID,
		UserID:    userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListManagedUsers handles GET /users/:id/managed
func (h *UserHandler) ListManagedUsers(c *gin.Context) {
	managerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listManagedUsersUC.Execute(c.Request.Context(), usecases.ListManagedUsersQuery{
		Actor:     middleware.ActorFromContext(c),
		ManagerID: managerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Users)
}
