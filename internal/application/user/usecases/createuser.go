package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type CreateUserCommand struct {
	Actor          authorization.Actor
	Name           string
	Email          string
	Password       string
	CompanyName    string
	Role           string
	OrganizationID uint
}

type CreateUserResult struct {
	UserID uint `json:"user_id"`
}

// CreateUserUseCase is the admin path for provisioning accounts with an
// explicit role and organization.
type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can create users")
	}
	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}

	role := authorization.Role(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("unknown role: " + cmd.Role)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email, hash, role, cmd.OrganizationID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.CompanyName != "" {
		company := cmd.CompanyName
		if err := newUser.UpdateProfile(nil, nil, &company); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user created",
		"user_id", newUser.ID(), "role", role, "created_by", cmd.Actor.UserID)

	return &CreateUserResult{UserID: newUser.ID()}, nil
}
