package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type CreateCampaignCommand struct {
	Actor      authorization.Actor
	Name       string
	TargetRole string
}

type CreateCampaignResult struct {
	CampaignID uint `json:"campaign_id"`
}

type CreateCampaignUseCase struct {
	campaignRepo feedback.CampaignRepository
	logger       logger.Interface
}

func NewCreateCampaignUseCase(
	campaignRepo feedback.CampaignRepository,
	logger logger.Interface,
) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{
		campaignRepo: campaignRepo,
		logger:       logger,
	}
}

func (uc *CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (*CreateCampaignResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can create campaigns")
	}

	campaign, err := feedback.NewCampaign(cmd.Name, authorization.Role(cmd.TargetRole))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.campaignRepo.Create(ctx, campaign); err != nil {
		uc.logger.Errorw("failed to create campaign", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("feedback campaign created",
		"campaign_id", campaign.ID(), "name", campaign.Name(),
		"target_role", campaign.TargetRole(), "actor_id", cmd.Actor.UserID)

	return &CreateCampaignResult{CampaignID: campaign.ID()}, nil
}
