package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type UpdateOrganizationCommand struct {
	Actor          authorization.Actor
	OrganizationID uint
	Name           *string
	Website        *string
	PricingTier    *string
}

type UpdateOrganizationResult struct {
	OrganizationID uint   `json:"organization_id"`
	PricingTier    string `json:"pricing_tier"`
}

type UpdateOrganizationUseCase struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewUpdateOrganizationUseCase(orgRepo organization.Repository, logger logger.Interface) *UpdateOrganizationUseCase {
	return &UpdateOrganizationUseCase{
		orgRepo: orgRepo,
		logger:  logger,
	}
}

func (uc *UpdateOrganizationUseCase) Execute(ctx context.Context, cmd UpdateOrganizationCommand) (*UpdateOrganizationResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can update organizations")
	}

	org, err := uc.orgRepo.FindByID(ctx, cmd.OrganizationID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if err := org.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Website != nil {
		org.SetWebsite(*cmd.Website)
	}
	if cmd.PricingTier != nil {
		if err := org.ChangeTier(organization.PricingTier(*cmd.PricingTier)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.orgRepo.Update(ctx, org); err != nil {
		uc.logger.Errorw("failed to update organization",
			"organization_id", cmd.OrganizationID, "error", err)
		return nil, err
	}

	uc.logger.Infow("organization updated",
		"organization_id", org.ID(), "actor_id", cmd.Actor.UserID)

	return &UpdateOrganizationResult{
		OrganizationID: org.ID(),
		PricingTier:    string(org.PricingTier()),
	}, nil
}
