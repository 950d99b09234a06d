package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/ticket"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
)

type mockTicketRepository struct {
	CreateFunc        func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc      func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc          func(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error)
	UpdateFunc        func(ctx context.Context, t *ticket.Ticket) error
	CloseAllOpenFunc  func(ctx context.Context) (int64, error)
	CountByStatusFunc func(ctx context.Context, filter ticket.ListFilter) (map[ticket.Status]int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) CloseAllOpen(ctx context.Context) (int64, error) {
	if m.CloseAllOpenFunc != nil {
		return m.CloseAllOpenFunc(ctx)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, filter ticket.ListFilter) (map[ticket.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, filter)
	}
	return nil, nil
}

type mockCommentRepository struct {
	CreateFunc       func(ctx context.Context, c *ticket.Comment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	FindByIDFunc      func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context, filter user.ListFilter, offset, limit int) ([]*user.User, int64, error)
	UpdateFunc        func(ctx context.Context, u *user.User) error
	DeleteFunc        func(ctx context.Context, id uint) error
	CountFunc         func(ctx context.Context, filter user.ListFilter) (int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter, offset, limit int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) Count(ctx context.Context, filter user.ListFilter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

type mockAssignmentRepository struct {
	CreateFunc               func(ctx context.Context, a *user.Assignment) error
	FindByManagerAndUserFunc func(ctx context.Context, managerID, userID uint) (*user.Assignment, error)
	ListActiveByManagerFunc  func(ctx context.Context, managerID uint) ([]*user.Assignment, error)
	ManagedUserIDsFunc       func(ctx context.Context, managerID uint) ([]uint, error)
	UpdateFunc               func(ctx context.Context, a *user.Assignment) error
	HasActiveAssignmentFunc  func(ctx context.Context, managerID, userID uint) (bool, error)
}

func (m *mockAssignmentRepository) Create(ctx context.Context, a *user.Assignment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) FindByManagerAndUser(ctx context.Context, managerID, userID uint) (*user.Assignment, error) {
	if m.FindByManagerAndUserFunc != nil {
		return m.FindByManagerAndUserFunc(ctx, managerID, userID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListActiveByManager(ctx context.Context, managerID uint) ([]*user.Assignment, error) {
	if m.ListActiveByManagerFunc != nil {
		return m.ListActiveByManagerFunc(ctx, managerID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ManagedUserIDs(ctx context.Context, managerID uint) ([]uint, error) {
	if m.ManagedUserIDsFunc != nil {
		return m.ManagedUserIDsFunc(ctx, managerID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *user.Assignment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) HasActiveAssignment(ctx context.Context, managerID, userID uint) (bool, error) {
	if m.HasActiveAssignmentFunc != nil {
		return m.HasActiveAssignmentFunc(ctx, managerID, userID)
	}
	return false, nil
}

type mockOutboxRepository struct {
	EnqueueFunc       func(ctx context.Context, msg *outbox.Message) error
	ListDueFunc       func(ctx context.Context, limit int) ([]*outbox.Message, error)
	UpdateFunc        func(ctx context.Context, msg *outbox.Message) error
	CountByStatusFunc func(ctx context.Context) (map[outbox.Status]int64, error)
}

func (m *mockOutboxRepository) Enqueue(ctx context.Context, msg *outbox.Message) error {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(ctx, msg)
	}
	return nil
}

func (m *mockOutboxRepository) ListDue(ctx context.Context, limit int) ([]*outbox.Message, error) {
	if m.ListDueFunc != nil {
		return m.ListDueFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockOutboxRepository) Update(ctx context.Context, msg *outbox.Message) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, msg)
	}
	return nil
}

func (m *mockOutboxRepository) CountByStatus(ctx context.Context) (map[outbox.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return nil, nil
}
