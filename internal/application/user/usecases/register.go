package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Name             string
	Email            string
	Password         string
	CompanyName      string
	OrganizationName string
	Website          string
}

type RegisterResult struct {
	UserID         uint `json:"user_id"`
	OrganizationID uint `json:"organization_id"`
}

// RegisterUseCase signs up a new customer. Every registration creates a
// fresh organization; the first account in it gets the plain user role.
type RegisterUseCase struct {
	userRepo user.Repository
	orgRepo  organization.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	orgRepo organization.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		orgRepo:  orgRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email)

	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	orgName := cmd.OrganizationName
	if orgName == "" {
		orgName = cmd.Name
	}
	org, err := organization.NewOrganization(orgName, cmd.Website)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.orgRepo.Create(ctx, org); err != nil {
		uc.logger.Errorw("failed to create organization", "error", err)
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email, hash, authorization.RoleUser, org.ID())
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

	uc.logger.Infow("user registered",
		"user_id", newUser.ID(), "organization_id", org.ID())

	return &RegisterResult{
		UserID:         newUser.ID(),
		OrganizationID: org.ID(),
	}, nil
}
