package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ChangePasswordCommand struct {
	Actor           authorization.Actor
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase rotates a password. Users must prove the current
// password; admins may reset anyone's without it.
type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if cmd.NewPassword == "" {
		return errors.NewValidationError("new password is required")
	}

	isSelf := cmd.Actor.UserID == cmd.UserID
	if !isSelf && !cmd.Actor.Role.IsAdmin() {
		return errors.NewForbiddenError("you cannot change another user's password")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if isSelf {
		if err := uc.hasher.Verify(cmd.CurrentPassword, u.PasswordHash()); err != nil {
			return errors.NewUnauthorizedError("current password is incorrect")
		}
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to process password")
	}

	if err := u.ChangePasswordHash(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update password", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID, "actor_id", cmd.Actor.UserID)
	return nil
}
