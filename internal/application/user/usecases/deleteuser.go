package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	Actor  authorization.Actor
	UserID uint
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	policy   *authorization.ResourcePolicy
	logger   logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		policy:   policy,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if !uc.policy.CanDelete(cmd.Actor) {
		return errors.NewForbiddenError("only admins can delete users")
	}
	if cmd.Actor.UserID == cmd.UserID {
		return errors.NewValidationError("you cannot delete your own account")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID, "actor_id", cmd.Actor.UserID)
	return nil
}
