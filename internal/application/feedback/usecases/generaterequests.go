package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

const generateBatchSize = 500

type GenerateRequestsCommand struct {
	Actor      authorization.Actor
	CampaignID uint
}

type GenerateRequestsResult struct {
	CampaignID   uint `json:"campaign_id"`
	CreatedCount int  `json:"created_count"`
	SkippedCount int  `json:"skipped_count"`
}

// GenerateRequestsUseCase enumerates every active user inside the
// campaign's audience and opens a pending feedback row for each. Users
// who already have a row for the campaign, pending or complete, are
// skipped, so rerunning a campaign is safe.
type GenerateRequestsUseCase struct {
	campaignRepo feedback.CampaignRepository
	feedbackRepo feedback.Repository
	userRepo     user.Repository
	outboxRepo   outbox.Repository
	logger       logger.Interface
}

func NewGenerateRequestsUseCase(
	campaignRepo feedback.CampaignRepository,
	feedbackRepo feedback.Repository,
	userRepo user.Repository,
	outboxRepo outbox.Repository,
	logger logger.Interface,
) *GenerateRequestsUseCase {
	return &GenerateRequestsUseCase{
		campaignRepo: campaignRepo,
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		outboxRepo:   outboxRepo,
		logger:       logger,
	}
}

func (uc *GenerateRequestsUseCase) Execute(ctx context.Context, cmd GenerateRequestsCommand) (*GenerateRequestsResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can generate feedback requests")
	}

	campaign, err := uc.campaignRepo.FindByID(ctx, cmd.CampaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.IsActive() {
		return nil, errors.NewValidationError("campaign is not active")
	}

	// Campaigns are platform-wide: the audience is every active user
	// holding the target role, walked page by page.
	filter := user.ListFilter{
		Role:       campaign.TargetRole(),
		ActiveOnly: true,
	}

	created := 0
	skipped := 0
	var recipients []outbox.Recipient
	for offset := 0; ; offset += generateBatchSize {
		audience, _, err := uc.userRepo.List(ctx, filter, offset, generateBatchSize)
		if err != nil {
			return nil, err
		}

		for _, u := range audience {
			if !campaign.Targets(u.Role()) {
				continue
			}

			if _, err := uc.feedbackRepo.FindByCampaignAndUser(ctx, campaign.ID(), u.ID()); err == nil {
				skipped++
				continue
			} else if !errors.IsNotFoundError(err) {
				return nil, err
			}

			f, err := feedback.NewFeedback(u.ID(), campaign.ID())
			if err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			if err := uc.feedbackRepo.Create(ctx, f); err != nil {
				// A concurrent run may have won the unique index race.
				if errors.IsDuplicateError(err) {
					skipped++
					continue
				}
				uc.logger.Errorw("failed to create feedback request",
					"campaign_id", campaign.ID(), "user_id", u.ID(), "error", err)
				return nil, err
			}
			created++
			recipients = append(recipients, outbox.Recipient{
				UserID: u.ID(),
				Email:  u.Email(),
				Name:   u.Name(),
			})
		}

		if len(audience) < generateBatchSize {
			break
		}
	}

	if len(recipients) > 0 {
		enqueueEvent(ctx, uc.outboxRepo, uc.logger, outbox.TopicFeedbackRequested, outbox.FeedbackEventPayload{
			CampaignID:   campaign.ID(),
			CampaignName: campaign.Name(),
			Recipients:   recipients,
		})
	}

	uc.logger.Infow("feedback requests generated",
		"campaign_id", campaign.ID(), "created", created, "skipped", skipped)

	return &GenerateRequestsResult{
		CampaignID:   campaign.ID(),
		CreatedCount: created,
		SkippedCount: skipped,
	}, nil
}
