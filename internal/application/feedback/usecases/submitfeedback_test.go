package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

func TestSubmitFeedbackUseCase_CompletesOwnRequest(t *testing.T) {
	f := testFeedback(t, 101, 5, 3)
	var saved bool
	feedbackRepo := &mockFeedbackRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*feedback.Feedback, error) {
			return f, nil
		},
		UpdateFunc: func(ctx context.Context, f *feedback.Feedback) error {
			saved = true
			return nil
		},
	}

	uc := NewSubmitFeedbackUseCase(feedbackRepo, logger.NewNop())

	rating := 4
	result, err := uc.Execute(context.Background(), SubmitFeedbackCommand{
		Actor:      testActor(5, authorization.RoleUser),
		FeedbackID: 101,
		Answers: []SubmitAnswer{
			{QuestionID: 1, Rating: &rating},
			{QuestionID: 2, Text: "Faster turnaround on niche edits would help."},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "complete", result.Status)
	assert.True(t, f.IsComplete())
	require.NotNil(t, f.CompletedAt())
	require.Len(t, f.Answers(), 2)
	assert.True(t, saved)
}

func TestSubmitFeedbackUseCase_SomeoneElsesRequestReadsAsMissing(t *testing.T) {
	f := testFeedback(t, 101, 5, 3)
	feedbackRepo := &mockFeedbackRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*feedback.Feedback, error) {
			return f, nil
		},
	}

	uc := NewSubmitFeedbackUseCase(feedbackRepo, logger.NewNop())

	rating := 5
	_, err := uc.Execute(context.Background(), SubmitFeedbackCommand{
		Actor:      testActor(9, authorization.RoleUser),
		FeedbackID: 101,
		Answers:    []SubmitAnswer{{QuestionID: 1, Rating: &rating}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSubmitFeedbackUseCase_ResubmissionRejected(t *testing.T) {
	f := testFeedback(t, 101, 5, 3)
	rating := 3
	require.NoError(t, f.Submit([]feedback.Answer{{QuestionID: 1, Rating: &rating}}))

	feedbackRepo := &mockFeedbackRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*feedback.Feedback, error) {
			return f, nil
		},
	}

	uc := NewSubmitFeedbackUseCase(feedbackRepo, logger.NewNop())

	_, err := uc.Execute(context.Background(), SubmitFeedbackCommand{
		Actor:      testActor(5, authorization.RoleUser),
		FeedbackID: 101,
		Answers:    []SubmitAnswer{{QuestionID: 1, Rating: &rating}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSubmitFeedbackUseCase_RatingOutOfBoundsRejected(t *testing.T) {
	f := testFeedback(t, 101, 5, 3)
	feedbackRepo := &mockFeedbackRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*feedback.Feedback, error) {
			return f, nil
		},
	}

	uc := NewSubmitFeedbackUseCase(feedbackRepo, logger.NewNop())

	rating := 6
	_, err := uc.Execute(context.Background(), SubmitFeedbackCommand{
		Actor:      testActor(5, authorization.RoleUser),
		FeedbackID: 101,
		Answers:    []SubmitAnswer{{QuestionID: 1, Rating: &rating}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, f.IsComplete())
}

func TestCreateCampaignUseCase_InvalidTargetRoleRejected(t *testing.T) {
	uc := NewCreateCampaignUseCase(&mockCampaignRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateCampaignCommand{
		Actor:      testActor(1, authorization.RoleAdmin),
		Name:       "Broken survey",
		TargetRole: "superuser",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAddQuestionUseCase_AttachesToCampaign(t *testing.T) {
	campaign := testCampaign(t, 3, "Q3 customer survey", authorization.RoleUser)
	campaignRepo := &mockCampaignRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*feedback.Campaign, error) {
			return campaign, nil
		},
	}
	var created *feedback.Question
	questionRepo := &mockQuestionRepository{
		CreateFunc: func(ctx context.Context, q *feedback.Question) error {
			created = q
			return q.SetID(21)
		},
	}

	uc := NewAddQuestionUseCase(campaignRepo, questionRepo, logger.NewNop())

	result, err := uc.Execute(context.Background(), AddQuestionCommand{
		Actor:      testActor(1, authorization.RoleAdmin),
		CampaignID: 3,
		Text:       "How satisfied are you with placement quality?",
		Kind:       "rating",
		Position:   1,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(21), result.QuestionID)
	require.NotNil(t, created)
	assert.Equal(t, uint(3), created.CampaignID())
	assert.Equal(t, feedback.QuestionRating, created.Kind())
}
