package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

type mockInvoiceRepository struct {
	CreateFunc         func(ctx context.Context, i *invoice.Invoice) error
	FindByIDFunc       func(ctx context.Context, id uint) (*invoice.Invoice, error)
	FindByNumberFunc   func(ctx context.Context, number string) (*invoice.Invoice, error)
	ListFunc           func(ctx context.Context, filter invoice.ListFilter, offset, limit int) ([]*invoice.Invoice, int64, error)
	UpdateFunc         func(ctx context.Context, i *invoice.Invoice) error
	ListDuePendingFunc func(ctx context.Context, limit int) ([]*invoice.Invoice, error)
	NextNumberFunc     func(ctx context.Context) (string, error)
	SumAmountCentsFunc func(ctx context.Context, filter invoice.ListFilter) (int64, error)
}

func (m *mockInvoiceRepository) Create(ctx context.Context, i *invoice.Invoice) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, i)
	}
	return nil
}

func (m *mockInvoiceRepository) FindByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("invoice not found")
}

func (m *mockInvoiceRepository) FindByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, errors.NewNotFoundError("invoice not found")
}

func (m *mockInvoiceRepository) List(ctx context.Context, filter invoice.ListFilter, offset, limit int) ([]*invoice.Invoice, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockInvoiceRepository) Update(ctx context.Context, i *invoice.Invoice) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockInvoiceRepository) ListDuePending(ctx context.Context, limit int) ([]*invoice.Invoice, error) {
	if m.ListDuePendingFunc != nil {
		return m.ListDuePendingFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) NextNumber(ctx context.Context) (string, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx)
	}
	return "INV-2026-0001", nil
}

func (m *mockInvoiceRepository) SumAmountCents(ctx context.Context, filter invoice.ListFilter) (int64, error) {
	if m.SumAmountCentsFunc != nil {
		return m.SumAmountCentsFunc(ctx, filter)
	}
	return 0, nil
}

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
	ListFunc     func(ctx context.Context, filter user.ListFilter, offset, limit int) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter, offset, limit int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockUserRepository) Count(ctx context.Context, filter user.ListFilter) (int64, error) {
	return 0, nil
}

type mockAssignmentRepository struct {
	ManagedUserIDsFunc      func(ctx context.Context, managerID uint) ([]uint, error)
	HasActiveAssignmentFunc func(ctx context.Context, managerID, userID uint) (bool, error)
}

func (m *mockAssignmentRepository) Create(ctx context.Context, a *user.Assignment) error {
	return nil
}

func (m *mockAssignmentRepository) FindByManagerAndUser(ctx context.Context, managerID, userID uint) (*user.Assignment, error) {
	return nil, errors.NewNotFoundError("assignment not found")
}

func (m *mockAssignmentRepository) ListActiveByManager(ctx context.Context, managerID uint) ([]*user.Assignment, error) {
	return nil, nil
}

func (m *mockAssignmentRepository) ManagedUserIDs(ctx context.Context, managerID uint) ([]uint, error) {
	if m.ManagedUserIDsFunc != nil {
		return m.ManagedUserIDsFunc(ctx, managerID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *user.Assignment) error {
	return nil
}

func (m *mockAssignmentRepository) HasActiveAssignment(ctx context.Context, managerID, userID uint) (bool, error) {
	if m.HasActiveAssignmentFunc != nil {
		return m.HasActiveAssignmentFunc(ctx, managerID, userID)
	}
	return false, nil
}

type mockOutboxRepository struct {
	EnqueueFunc func(ctx context.Context, msg *outbox.Message) error
}

func (m *mockOutboxRepository) Enqueue(ctx context.Context, msg *outbox.Message) error {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(ctx, msg)
	}
	return nil
}

func (m *mockOutboxRepository) ListDue(ctx context.Context, limit int) ([]*outbox.Message, error) {
	return nil, nil
}

func (m *mockOutboxRepository) Update(ctx context.Context, msg *outbox.Message) error {
	return nil
}

func (m *mockOutboxRepository) CountByStatus(ctx context.Context) (map[outbox.Status]int64, error) {
	return nil, nil
}
