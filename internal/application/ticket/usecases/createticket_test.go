package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/ticket"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

func TestCreateTicketUseCase_OpeningMessageBecomesFirstComment(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(1)
		},
	}
	var firstComment *ticket.Comment
	commentRepo := &mockCommentRepository{
		CreateFunc: func(ctx context.Context, c *ticket.Comment) error {
			firstComment = c
			return c.SetID(2)
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

	uc := NewCreateTicketUseCase(ticketRepo, commentRepo, userRepo, outboxRepo, logger.NewNop())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:   testActor(5, authorization.RoleUser, 7),
		Subject: "invoice looks wrong",
		Message: "invoice INV-2026-0005 double-charges the guest post",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.TicketID)
	assert.Equal(t, string(ticket.StatusOpen), result.Status)

	require.NotNil(t, firstComment)
	assert.Equal(t, uint(1), firstComment.TicketID())
	assert.False(t, firstComment.IsFromStaff())

	require.NotNil(t, enqueued)
	assert.Equal(t, outbox.TopicTicketCreated, enqueued.Topic())
	var payload outbox.TicketEventPayload
	require.NoError(t, json.Unmarshal(enqueued.Payload(), &payload))
	assert.Equal(t, "invoice looks wrong", payload.Subject)
	require.Len(t, payload.Recipients, 1)
	assert.Equal(t, uint(99), payload.Recipients[0].UserID)
}

func TestCreateTicketUseCase_DefaultsToNormalPriority(t *testing.T) {
	var created *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			created = tk
			return tk.SetID(3)
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(t, 5, "Owner", "owner@customer.test", authorization.RoleUser, 7), nil
		},
	}

	uc := NewCreateTicketUseCase(
		ticketRepo, &mockCommentRepository{}, userRepo, &mockOutboxRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:   testActor(5, authorization.RoleUser, 7),
		Subject: "question about pricing",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, ticket.PriorityNormal, created.Priority())
}

func TestCreateTicketUseCase_EmptySubjectRejected(t *testing.T) {
	uc := NewCreateTicketUseCase(
		&mockTicketRepository{}, &mockCommentRepository{}, &mockUserRepository{},
		&mockOutboxRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor: testActor(5, authorization.RoleUser, 7),
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
