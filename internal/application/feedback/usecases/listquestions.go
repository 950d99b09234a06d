package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/feedback/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ListQuestionsQuery struct {
	Actor      authorization.Actor
	CampaignID uint
	ActiveOnly bool
}

type ListQuestionsResult struct {
	Questions []*dto.QuestionDTO `json:"questions"`
}

// ListQuestionsUseCase returns a campaign's questions in survey order.
// Any authenticated user may read them; they need the questions to fill
// in their own pending feedback.
type ListQuestionsUseCase struct {
	questionRepo feedback.QuestionRepository
	logger       logger.Interface
}

func NewListQuestionsUseCase(
	questionRepo feedback.QuestionRepository,
	logger logger.Interface,
) *ListQuestionsUseCase {
	return &ListQuestionsUseCase{
		questionRepo: questionRepo,
		logger:       logger,
	}
}

func (uc *ListQuestionsUseCase) Execute(ctx context.Context, query ListQuestionsQuery) (*ListQuestionsResult, error) {
	questions, err := uc.questionRepo.ListByCampaign(ctx, query.CampaignID, query.ActiveOnly)
	if err != nil {
		return nil, err
	}

	return &ListQuestionsResult{Questions: dto.ToQuestionDTOs(questions)}, nil
}
