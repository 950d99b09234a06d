package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type SubmitAnswer struct {
	QuestionID uint
	Rating     *int
	Text       string
}

type SubmitFeedbackCommand struct {
	Actor      authorization.Actor
	FeedbackID uint
	Answers    []SubmitAnswer
}

type SubmitFeedbackResult struct {
	FeedbackID uint   `json:"feedback_id"`
	Status     string `json:"status"`
}

type SubmitFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewSubmitFeedbackUseCase(
	feedbackRepo feedback.Repository,
	logger logger.Interface,
) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*SubmitFeedbackResult, error) {
	f, err := uc.feedbackRepo.FindByID(ctx, cmd.FeedbackID)
	if err != nil {
		return nil, err
	}
	if f.UserID() != cmd.Actor.UserID {
		// Someone else's survey reads as missing.
		return nil, errors.NewNotFoundError("feedback request not found")
	}

	answers := make([]feedback.Answer, 0, len(cmd.Answers))
	for _, a := range cmd.Answers {
		answers = append(answers, feedback.Answer{
			QuestionID: a.QuestionID,
			Rating:     a.Rating,
			Text:       a.Text,
		})
	}

	if err := f.Submit(answers); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.feedbackRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to store feedback submission",
			"feedback_id", cmd.FeedbackID, "error", err)
		return nil, err
	}

	uc.logger.Infow("feedback submitted",
		"feedback_id", f.ID(), "campaign_id", f.CampaignID(), "user_id", f.UserID())

	return &SubmitFeedbackResult{
		FeedbackID: f.ID(),
		Status:     string(f.Status()),
	}, nil
}
