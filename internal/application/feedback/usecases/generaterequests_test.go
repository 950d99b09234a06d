package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

func TestGenerateRequestsUseCase_OpensRowForEachTargetedUser(t *testing.T) {
	campaign := testCampaign(t, 3, "Q3 customer survey", authorization.RoleUser)
	audience := []*user.User{
		testUser(t, 5, "Dana Reeve", "dana@example.com", authorization.RoleUser),
		testUser(t, 6, "Omar Hassan", "omar@example.com", authorization.RoleUser),
	}

	campaignRepo := &mockCampaignRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*feedback.Campaign, error) {
			return campaign, nil
		},
	}
	userRepo := &mockUserRepository{
		ListFunc: func(ctx context.Context, filter user.ListFilter, offset, limit int) ([]*user.User, int64, error) {
			assert.Equal(t, authorization.RoleUser, filter.Role)
			assert.True(t, filter.ActiveOnly)
			return audience, int64(len(audience)), nil
		},
	}
	var created []*feedback.Feedback
	nextID := uint(100)
	feedbackRepo := &mockFeedbackRepository{
		CreateFunc: func(ctx context.Context, f *feedback.Feedback) error {
			created = append(created, f)
			nextID++
			return f.SetID(nextID)
		},
	}
	var enqueued *outbox.Message
	outboxRepo := &mockOutboxRepository{
		EnqueueFunc: func(ctx context.Context, msg *outbox.Message) error {
			enqueued = msg
			return nil
		},
	}

	uc := NewGenerateRequestsUseCase(campaignRepo, feedbackRepo, userRepo, outboxRepo, logger.NewNop())

	result, err := uc.Execute(context.Background(), GenerateRequestsCommand{
		Actor:      testActor(1, authorization.RoleAdmin),
		CampaignID: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.CreatedCount)
	assert.Zero(t, result.SkippedCount)
	require.Len(t, created, 2)
	assert.Equal(t, uint(3), created[0].CampaignID())
	assert.Equal(t, feedback.StatusPending, created[0].Status())

	require.NotNil(t, enqueued)
	assert.Equal(t, outbox.TopicFeedbackRequested, enqueued.Topic())
	var payload outbox.FeedbackEventPayload
	require.NoError(t, json.Unmarshal(enqueued.Payload(), &payload))
	assert.Equal(t, "Q3 customer survey", payload.CampaignName)
	require.Len(t, payload.Recipients, 2)
	assert.Equal(t, uint(5), payload.Recipients[0].UserID)
}

func TestGenerateRequestsUseCase_WalksAudiencePastFirstPage(t *testing.T) {
	campaign := testCampaign(t, 3, "Q3 customer survey", authorization.RoleUser)

	// An audience bigger than one page: every user must still get a row.
	total := generateBatchSize + 37
	audience := make([]*user.User, total)
	for i := range audience {
		id := uint(1000 + i)
		audience[i] = testUser(t, id, fmt.Sprintf("User %d", id), fmt.Sprintf("user%d@example.com", id), authorization.RoleUser)
	}

	campaignRepo := &mockCampaignRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*feedback.Campaign, error) {
			return campaign, nil
		},
	}
	var offsets []int
	userRepo := &mockUserRepository{
		ListFunc: func(ctx context.Context, filter user.ListFilter, offset, limit int) ([]*user.User, int64, error) {
			offsets = append(offsets, offset)
			assert.Equal(t, generateBatchSize, limit)
			end := offset + limit
			if end > total {
				end = total
			}
			if offset >= total {
				return nil, int64(total), nil
			}
			return audience[offset:end], int64(total), nil
		},
	}
	created := 0
	feedbackRepo := &mockFeedbackRepository{
		CreateFunc: func(ctx context.Context, f *feedback.Feedback) error {
			created++
			return f.SetID(uint(created))
		},
	}
	var payload outbox.FeedbackEventPayload
	outboxRepo := &mockOutboxRepository{
		EnqueueFunc: func(ctx context.Context, msg *outbox.Message) error {
			return json.Unmarshal(msg.Payload(), &payload)
		},
	}

	uc := NewGenerateRequestsUseCase(campaignRepo, feedbackRepo, userRepo, outboxRepo, logger.NewNop())

	result, err := uc.Execute(context.Background(), GenerateRequestsCommand{
		Actor:      testActor(1, authorization.RoleAdmin),
		CampaignID: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, total, result.CreatedCount)
	assert.Equal(t, total, created)
	assert.Equal(t, []int{0, generateBatchSize}, offsets, "second page must be fetched")
	assert.Len(t, payload.Recipients, total)
}

func TestGenerateRequestsUseCase_RerunSkipsExistingRows(t *testing.T) {
	campaign := testCampaign(t, 3, "Q3 customer survey", authorization.RoleUser)
	audience := []*user.User{
		testUser(t, 5, "Dana Reeve", "dana@example.com", authorization.RoleUser),
		testUser(t, 6, "Omar Hassan", "omar@example.com", authorization.RoleUser),
	}
	existing := testFeedback(t, 101, 5, 3)

	campaignRepo := &mockCampaignRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*feedback.Campaign, error) {
			return campaign, nil
		},
	}
	userRepo := &mockUserRepository{
		ListFunc: func(ctx context.Context, filter user.ListFilter, offset, limit int) ([]*user.User, int64, error) {
			return audience, int64(len(audience)), nil
		},
	}
	feedbackRepo := &mockFeedbackRepository{
		FindByCampaignAndUserFunc: func(ctx context.Context, campaignID, userID uint) (*feedback.Feedback, error) {
			if userID == 5 {
				return existing, nil
			}
			return nil, errors.NewNotFoundError("feedback not found")
		},
		CreateFunc: func(ctx context.Context, f *feedback.Feedback) error {
			assert.Equal(t, uint(6), f.UserID(), "only the user without a row gets one")
			return f.SetID(102)
		},
	}
	var payload outbox.FeedbackEventPayload
	outboxRepo := &mockOutboxRepository{
		EnqueueFunc: func(ctx context.Context, msg *outbox.Message) error {
			return json.Unmarshal(msg.Payload(), &payload)
		},
	}

	uc := NewGenerateRequestsUseCase(campaignRepo, feedbackRepo, userRepo, outboxRepo, logger.NewNop())

	result, err := uc.Execute(context.Background(), GenerateRequestsCommand{
		Actor:      testActor(1, authorization.RoleAdmin),
		CampaignID: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.CreatedCount)
	assert.Equal(t, 1, result.SkippedCount)
	require.Len(t, payload.Recipients, 1)
	assert.Equal(t, uint(6), payload.Recipients[0].UserID, "already-covered users are not re-notified")
}

func TestGenerateRequestsUseCase_InactiveCampaignRejected(t *testing.T) {
	campaign := testCampaign(t, 3, "Old survey", "")
	campaign.Deactivate()

	campaignRepo := &mockCampaignRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*feedback.Campaign, error) {
			return campaign, nil
		},
	}

	uc := NewGenerateRequestsUseCase(campaignRepo, &mockFeedbackRepository{}, &mockUserRepository{}, &mockOutboxRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), GenerateRequestsCommand{
		Actor:      testActor(1, authorization.RoleAdmin),
		CampaignID: 3,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestGenerateRequestsUseCase_NonAdminForbidden(t *testing.T) {
	uc := NewGenerateRequestsUseCase(&mockCampaignRepository{}, &mockFeedbackRepository{}, &mockUserRepository{}, &mockOutboxRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), GenerateRequestsCommand{
		Actor:      testActor(5, authorization.RoleUser),
		CampaignID: 3,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
