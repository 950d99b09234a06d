package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/feedback/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ListCampaignsQuery struct {
	Actor      authorization.Actor
	ActiveOnly bool
	Offset     int
	Limit      int
}

type ListCampaignsResult struct {
	Campaigns []*dto.CampaignDTO `json:"campaigns"`
	Total     int64              `json:"total"`
}

type ListCampaignsUseCase struct {
	campaignRepo feedback.CampaignRepository
	logger       logger.Interface
}

func NewListCampaignsUseCase(
	campaignRepo feedback.CampaignRepository,
	logger logger.Interface,
) *ListCampaignsUseCase {
	return &ListCampaignsUseCase{
		campaignRepo: campaignRepo,
		logger:       logger,
	}
}

func (uc *ListCampaignsUseCase) Execute(ctx context.Context, query ListCampaignsQuery) (*ListCampaignsResult, error) {
	if !query.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can list campaigns")
	}

	campaigns, total, err := uc.campaignRepo.List(ctx, query.ActiveOnly, query.Offset, query.Limit)
	if err != nil {
		return nil, err
	}

	return &ListCampaignsResult{
		Campaigns: dto.ToCampaignDTOs(campaigns),
		Total:     total,
	}, nil
}
