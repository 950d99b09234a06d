package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type AddQuestionCommand struct {
	Actor      authorization.Actor
	CampaignID uint
	Text       string
	Kind       string
	Position   int
}

type AddQuestionResult struct {
	QuestionID uint `json:"question_id"`
}

type AddQuestionUseCase struct {
	campaignRepo feedback.CampaignRepository
	questionRepo feedback.QuestionRepository
	logger       logger.Interface
}

func NewAddQuestionUseCase(
	campaignRepo feedback.CampaignRepository,
	questionRepo feedback.QuestionRepository,
	logger logger.Interface,
) *AddQuestionUseCase {
	return &AddQuestionUseCase{
		campaignRepo: campaignRepo,
		questionRepo: questionRepo,
		logger:       logger,
	}
}

func (uc *AddQuestionUseCase) Execute(ctx context.Context, cmd AddQuestionCommand) (*AddQuestionResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can manage campaign questions")
	}

	campaign, err := uc.campaignRepo.FindByID(ctx, cmd.CampaignID)
	if err != nil {
		return nil, err
	}

	q, err := feedback.NewQuestion(campaign.ID(), cmd.Text, feedback.QuestionKind(cmd.Kind), cmd.Position)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.questionRepo.Create(ctx, q); err != nil {
		uc.logger.Errorw("failed to create question",
			"campaign_id", cmd.CampaignID, "error", err)
		return nil, err
	}

	uc.logger.Infow("campaign question added",
		"campaign_id", campaign.ID(), "question_id", q.ID(), "actor_id", cmd.Actor.UserID)

	return &AddQuestionResult{QuestionID: q.ID()}, nil
}
