package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

func TestAddCommentUseCase_OwnerCommentNotifiesAdmins(t *testing.T) {
	o := testOrder(t, 1, 5, 7, order.TypeGuestPost)
	orderRepo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*order.Order, error) {
			return o, nil
		},
	}
	var created *order.Comment
	commentRepo := &mockCommentRepository{
		CreateFunc: func(ctx context.Context, c *order.Comment) error {
			created = c
			return c.SetID(20)
		},
	}
	owner := testUser(t, 5, "Owner", "owner@customer.test", authorization.RoleUser, 7)
	admin := testUser(t, 99, "Admin", "admin@linkdesk.test", authorization.RoleAdmin, 1)
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return owner, nil
		},
		ListFunc: func(ctx context.Context, filter user.ListFilter, offset, limit int) ([]*user.User, int64, error) {
			return []*user.User{admin}, 1, nil
		},
	}
	var enqueued *outbox.Message
	outboxRepo := &mockOutboxRepository{
		EnqueueFunc: func(ctx context.Context, msg *outbox.Message) error {
			enqueued = msg
			return nil
		},
	}
	policy := authorization.NewResourcePolicy(&mockAssignmentRepository{})

	uc := NewAddCommentUseCase(orderRepo, commentRepo, userRepo, outboxRepo, policy, logger.NewNop())

	result, err := uc.Execute(context.Background(), AddCommentCommand{
		Actor:   testActor(5, authorization.RoleUser, 7),
		OrderID: 1,
		Content: "any update on the title?",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(20), result.CommentID)
	require.NotNil(t, created)
	assert.False(t, created.IsFromAdmin())

	require.NotNil(t, enqueued)
	assert.Equal(t, outbox.TopicOrderCommentAdded, enqueued.Topic())
	var payload outbox.OrderEventPayload
	require.NoError(t, json.Unmarshal(enqueued.Payload(), &payload))
	require.Len(t, payload.Recipients, 1)
	assert.Equal(t, uint(99), payload.Recipients[0].UserID)
	assert.Equal(t, "Owner", payload.Author)
}

func TestAddCommentUseCase_StaffCommentNotifiesOwner(t *testing.T) {
	o := testOrder(t, 1, 5, 7, order.TypeGuestPost)
	orderRepo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*order.Order, error) {
			return o, nil
		},
	}
	commentRepo := &mockCommentRepository{
		CreateFunc: func(ctx context.Context, c *order.Comment) error {
			return c.SetID(21)
		},
	}
	owner := testUser(t, 5, "Owner", "owner@customer.test", authorization.RoleUser, 7)
	admin := testUser(t, 99, "Admin", "admin@linkdesk.test", authorization.RoleAdmin, 1)
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if id == 99 {
				return admin, nil
			}
			return owner, nil
		},
	}
	var enqueued *outbox.Message
	outboxRepo := &mockOutboxRepository{
		EnqueueFunc: func(ctx context.Context, msg *outbox.Message) error {
			enqueued = msg
			return nil
		},
	}
	policy := authorization.NewResourcePolicy(&mockAssignmentRepository{})

	uc := NewAddCommentUseCase(orderRepo, commentRepo, userRepo, outboxRepo, policy, logger.NewNop())

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		Actor:   testActor(99, authorization.RoleAdmin, 1),
		OrderID: 1,
		Content: "title approved, moving to writing",
	})

	require.NoError(t, err)
	require.NotNil(t, enqueued)
	var payload outbox.OrderEventPayload
	require.NoError(t, json.Unmarshal(enqueued.Payload(), &payload))
	require.Len(t, payload.Recipients, 1)
	assert.Equal(t, uint(5), payload.Recipients[0].UserID)
	assert.Equal(t, "Admin", payload.Author)
}

func TestAddCommentUseCase_UnrelatedUserForbidden(t *testing.T) {
	o := testOrder(t, 1, 5, 7, order.TypeGuestPost)
	orderRepo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*order.Order, error) {
			return o, nil
		},
	}
	policy := authorization.NewResourcePolicy(&mockAssignmentRepository{})

	uc := NewAddCommentUseCase(
		orderRepo, &mockCommentRepository{}, &mockUserRepository{},
		&mockOutboxRepository{}, policy, logger.NewNop())

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		Actor:   testActor(33, authorization.RoleUser, 7),
		OrderID: 1,
		Content: "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
