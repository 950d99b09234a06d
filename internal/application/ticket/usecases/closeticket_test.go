package usecases

import (
	"context"
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

func TestCloseTicketUseCase_OwnerClosesWithRating(t *testing.T) {
	tk := testTicket(t, 1, 5)
	var updated *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}
	admin := testUser(t, 99, "Admin", "admin@linkdesk.test", authorization.RoleAdmin, 1)
	userRepo := &mockUserRepository{
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

	uc := NewCloseTicketUseCase(ticketRepo, userRepo, outboxRepo, policy, logger.NewNop())

	rating := 4
	result, err := uc.Execute(context.Background(), CloseTicketCommand{
		Actor:    testActor(5, authorization.RoleUser, 7),
		TicketID: 1,
		Rating:   &rating,
	})

	require.NoError(t, err)
	assert.Equal(t, string(ticket.StatusClosed), result.Status)
	assert.False(t, result.ClosedAt.IsZero())

	require.NotNil(t, updated)
	require.NotNil(t, updated.Rating())
	assert.Equal(t, 4, *updated.Rating())

	require.NotNil(t, enqueued)
	assert.Equal(t, outbox.TopicTicketClosed, enqueued.Topic())
}

func TestCloseTicketUseCase_RatingOutOfBoundsRejected(t *testing.T) {
	tk := testTicket(t, 1, 5)
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	policy := authorization.NewResourcePolicy(&mockAssignmentRepository{})

	uc := NewCloseTicketUseCase(
		ticketRepo, &mockUserRepository{}, &mockOutboxRepository{}, policy, logger.NewNop())

	rating := 6
	_, err := uc.Execute(context.Background(), CloseTicketCommand{
		Actor:    testActor(5, authorization.RoleUser, 7),
		TicketID: 1,
		Rating:   &rating,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, tk.IsClosed())
}

func TestCloseAllOpenUseCase_AdminOnly(t *testing.T) {
	uc := NewCloseAllOpenUseCase(&mockTicketRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CloseAllOpenCommand{
		Actor: testActor(5, authorization.RoleUserManager, 7),
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCloseAllOpenUseCase_ReportsClosedCount(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		CloseAllOpenFunc: func(ctx context.Context) (int64, error) {
			return 17, nil
		},
	}

	uc := NewCloseAllOpenUseCase(ticketRepo, logger.NewNop())

	result, err := uc.Execute(context.Background(), CloseAllOpenCommand{
		Actor: testActor(9, authorization.RoleAdmin, 1),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(17), result.ClosedCount)
}
