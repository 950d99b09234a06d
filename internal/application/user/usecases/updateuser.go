package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type UpdateUserCommand struct {
	Actor  authorization.Actor
	UserID uint
	Update authorization.UserUpdate
}

type UpdateUserResult struct {
	UserID         uint     `json:"user_id"`
	StrippedFields []string `json:"stripped_fields"`
}

// UpdateUserUseCase applies a profile update through the role projection:
// non-admin actors silently lose role, organization, and activation
// changes, and the response names the fields that were dropped.
type UpdateUserUseCase struct {
	userRepo user.Repository
	policy   *authorization.ResourcePolicy
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		policy:   policy,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UpdateUserResult, error) {
	allowed, err := uc.policy.CanAccessOwned(ctx, cmd.Actor, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewForbiddenError("you do not have access to this user")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	update, stripped := authorization.ProjectUserUpdate(cmd.Actor, cmd.Update)
	if len(stripped) > 0 {
		uc.logger.Infow("stripped restricted user fields",
			"user_id", cmd.UserID, "actor_id", cmd.Actor.UserID, "fields", stripped)
	}

	if update.Email != nil && *update.Email != u.Email() {
		exists, err := uc.userRepo.ExistsByEmail(ctx, *update.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.NewConflictError("email is already registered")
		}
	}

	if err := u.UpdateProfile(update.Name, update.Email, update.CompanyName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if update.Role != nil {
		role := authorization.Role(*update.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("unknown role: " + *update.Role)
		}
		if err := u.ChangeRole(role); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if update.OrganizationID != nil {
		u.MoveToOrganization(*update.OrganizationID)
	}
	if update.Active != nil {
		if *update.Active {
			u.Activate()
		} else {
			u.Deactivate()
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated", "user_id", cmd.UserID, "actor_id", cmd.Actor.UserID)

	return &UpdateUserResult{
		UserID:         u.ID(),
		StrippedFields: stripped,
	}, nil
}
