package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type AssignManagerCommand struct {
	Actor     authorization.Actor
	ManagerID uint
	UserID    uint
}

type AssignManagerResult struct {
	AssignmentID uint `json:"assignment_id"`
	Reactivated  bool `json:"reactivated"`
}

// AssignManagerUseCase links a user manager to a customer. A previously
// revoked pair is reactivated rather than duplicated, so the history of
// the assignment survives.
type AssignManagerUseCase struct {
	userRepo       user.Repository
	assignmentRepo user.AssignmentRepository
	logger         logger.Interface
}

func NewAssignManagerUseCase(
	userRepo user.Repository,
	assignmentRepo user.AssignmentRepository,
	logger logger.Interface,
) *AssignManagerUseCase {
	return &AssignManagerUseCase{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *AssignManagerUseCase) Execute(ctx context.Context, cmd AssignManagerCommand) (*AssignManagerResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can assign managers")
	}

	manager, err := uc.userRepo.FindByID(ctx, cmd.ManagerID)
	if err != nil {
		return nil, err
	}
	if manager.Role() != authorization.RoleUserManager {
		return nil, errors.NewValidationError("assignee is not a user manager")
	}

	if _, err := uc.userRepo.FindByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	existing, err := uc.assignmentRepo.FindByManagerAndUser(ctx, cmd.ManagerID, cmd.UserID)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	if existing != nil {
		if existing.IsActive() {
			return nil, errors.NewConflictError("user is already assigned to this manager")
		}
		existing.Reactivate()
		if err := uc.assignmentRepo.Update(ctx, existing); err != nil {
			uc.logger.Errorw("failed to reactivate assignment",
				"manager_id", cmd.ManagerID, "user_id", cmd.UserID, "error", err)
			return nil, err
		}
		uc.logger.Infow("assignment reactivated",
			"manager_id", cmd.ManagerID, "user_id", cmd.UserID, "actor_id", cmd.Actor.UserID)
		return &AssignManagerResult{AssignmentID: existing.ID(), Reactivated: true}, nil
	}

	assignment, err := user.NewAssignment(cmd.ManagerID, cmd.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.assignmentRepo.Create(ctx, assignment); err != nil {
		uc.logger.Errorw("failed to create assignment",
			"manager_id", cmd.ManagerID, "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("manager assigned",
		"manager_id", cmd.ManagerID, "user_id", cmd.UserID, "actor_id", cmd.Actor.UserID)

	return &AssignManagerResult{AssignmentID: assignment.ID()}, nil
}
