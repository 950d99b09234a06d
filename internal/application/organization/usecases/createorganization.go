package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type CreateOrganizationCommand struct {
	Actor   authorization.Actor
	Name    string
	Website string
}

type CreateOrganizationResult struct {
	OrganizationID uint `json:"organization_id"`
}

type CreateOrganizationUseCase struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewCreateOrganizationUseCase(orgRepo organization.Repository, logger logger.Interface) *CreateOrganizationUseCase {
	return &CreateOrganizationUseCase{
		orgRepo: orgRepo,
		logger:  logger,
	}
}

func (uc *CreateOrganizationUseCase) Execute(ctx context.Context, cmd CreateOrganizationCommand) (*CreateOrganizationResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can create organizations")
	}

	if existing, err := uc.orgRepo.FindByName(ctx, cmd.Name); err == nil && existing != nil {
		return nil, errors.NewConflictError("organization name is already taken")
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	org, err := organization.NewOrganization(cmd.Name, cmd.Website)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.orgRepo.Create(ctx, org); err != nil {
		uc.logger.Errorw("failed to create organization", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("organization created",
		"organization_id", org.ID(), "name", org.Name(), "actor_id", cmd.Actor.UserID)

	return &CreateOrganizationResult{OrganizationID: org.ID()}, nil
}
