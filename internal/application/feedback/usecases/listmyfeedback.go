package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/feedback/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ListMyFeedbackQuery struct {
	Actor       authorization.Actor
	PendingOnly bool
	Offset      int
	Limit       int
}

type ListMyFeedbackResult struct {
	Feedbacks []*dto.FeedbackDTO `json:"feedbacks"`
	Total     int64              `json:"total"`
}

type ListMyFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewListMyFeedbackUseCase(
	feedbackRepo feedback.Repository,
	logger logger.Interface,
) *ListMyFeedbackUseCase {
	return &ListMyFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *ListMyFeedbackUseCase) Execute(ctx context.Context, query ListMyFeedbackQuery) (*ListMyFeedbackResult, error) {
	feedbacks, total, err := uc.feedbackRepo.ListByUser(
		ctx, query.Actor.UserID, query.PendingOnly, query.Offset, query.Limit)
	if err != nil {
		return nil, err
	}

	return &ListMyFeedbackResult{
		Feedbacks: dto.ToFeedbackDTOs(feedbacks),
		Total:     total,
	}, nil
}
