package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type RevokeManagerCommand struct {
	Actor     authorization.Actor
	ManagerID uint
	UserID    uint
}

type RevokeManagerUseCase struct {
	assignmentRepo user.AssignmentRepository
	logger         logger.Interface
}

func NewRevokeManagerUseCase(
	assignmentRepo user.AssignmentRepository,
	logger logger.Interface,
) *RevokeManagerUseCase {
	return &RevokeManagerUseCase{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *RevokeManagerUseCase) Execute(ctx context.Context, cmd RevokeManagerCommand) error {
	if !cmd.Actor.Role.IsAdmin() {
		return errors.NewForbiddenError("only admins can revoke assignments")
	}

	assignment, err := uc.assignmentRepo.FindByManagerAndUser(ctx, cmd.ManagerID, cmd.UserID)
	if err != nil {
		return err
	}
	if !assignment.IsActive() {
		return errors.NewValidationError("assignment is already revoked")
	}

	assignment.Revoke()
	if err := uc.assignmentRepo.Update(ctx, assignment); err != nil {
		uc.logger.Errorw("failed to revoke assignment",
			"manager_id", cmd.ManagerID, "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("assignment revoked",
		"manager_id", cmd.ManagerID, "user_id", cmd.UserID, "actor_id", cmd.Actor.UserID)
	return nil
}
