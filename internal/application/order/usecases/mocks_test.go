package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
)

type mockOrderRepository struct {
	CreateFunc        func(ctx context.Context, o *order.Order) error
	FindByIDFunc      func(ctx context.Context, id uint) (*order.Order, error)
	ListFunc          func(ctx context.Context, filter order.ListFilter, offset, limit int) ([]*order.Order, int64, error)
	UpdateFunc        func(ctx context.Context, o *order.Order) error
	DeleteFunc        func(ctx context.Context, id uint) error
	CountByStatusFunc func(ctx context.Context, filter order.ListFilter) (map[order.Status]int64, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOrderRepository) List(ctx context.Context, filter order.ListFilter, offset, limit int) ([]*order.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockOrderRepository) CountByStatus(ctx context.Context, filter order.ListFilter) (map[order.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, filter)
	}
	return nil, nil
}

type mockCommentRepository struct {
	CreateFunc             func(ctx context.Context, c *order.Comment) error
	FindByIDFunc           func(ctx context.Context, id uint) (*order.Comment, error)
	ListByOrderFunc        func(ctx context.Context, orderID uint) ([]*order.Comment, error)
	UpdateFunc             func(ctx context.Context, c *order.Comment) error
	CountUnreadForUserFunc func(ctx context.Context, orderID, userID uint) (int64, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *order.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) FindByID(ctx context.Context, id uint) (*order.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByOrder(ctx context.Context, orderID uint) ([]*order.Comment, error) {
	if m.ListByOrderFunc != nil {
		return m.ListByOrderFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Update(ctx context.Context, c *order.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) CountUnreadForUser(ctx context.Context, orderID, userID uint) (int64, error) {
	if m.CountUnreadForUserFunc != nil {
		return m.CountUnreadForUserFunc(ctx, orderID, userID)
	}
	return 0, nil
}

type mockDomainRepository struct {
	CreateFunc           func(ctx context.Context, d *inventory.Domain) error
	FindByIDFunc         func(ctx context.Context, id uint) (*inventory.Domain, error)
	FindByNameFunc       func(ctx context.Context, name string) (*inventory.Domain, error)
	ListFunc             func(ctx context.Context, filter inventory.ListFilter, offset, limit int) ([]*inventory.Domain, int64, error)
	UpdateFunc           func(ctx context.Context, d *inventory.Domain) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListStaleRatingsFunc func(ctx context.Context, maxAgeHours int, limit int) ([]*inventory.Domain, error)
}

func (m *mockDomainRepository) Create(ctx context.Context, d *inventory.Domain) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDomainRepository) FindByID(ctx context.Context, id uint) (*inventory.Domain, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDomainRepository) FindByName(ctx context.Context, name string) (*inventory.Domain, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockDomainRepository) List(ctx context.Context, filter inventory.ListFilter, offset, limit int) ([]*inventory.Domain, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockDomainRepository) Update(ctx context.Context, d *inventory.Domain) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDomainRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockDomainRepository) ListStaleRatings(ctx context.Context, maxAgeHours int, limit int) ([]*inventory.Domain, error) {
	if m.ListStaleRatingsFunc != nil {
		return m.ListStaleRatingsFunc(ctx, maxAgeHours, limit)
	}
	return nil, nil
}

type mockOrganizationRepository struct {
	CreateFunc               func(ctx context.Context, o *organization.Organization) error
	FindByIDFunc             func(ctx context.Context, id uint) (*organization.Organization, error)
	FindByNameFunc           func(ctx context.Context, name string) (*organization.Organization, error)
	ListFunc                 func(ctx context.Context, offset, limit int) ([]*organization.Organization, int64, error)
	UpdateFunc               func(ctx context.Context, o *organization.Organization) error
	DeleteFunc               func(ctx context.Context, id uint) error
	IncrementOrdersCountFunc func(ctx context.Context, id uint) error
}

func (m *mockOrganizationRepository) Create(ctx context.Context, o *organization.Organization) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrganizationRepository) FindByID(ctx context.Context, id uint) (*organization.Organization, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) FindByName(ctx context.Context, name string) (*organization.Organization, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) List(ctx context.Context, offset, limit int) ([]*organization.Organization, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockOrganizationRepository) Update(ctx context.Context, o *organization.Organization) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrganizationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockOrganizationRepository) IncrementOrdersCount(ctx context.Context, id uint) error {
	if m.IncrementOrdersCountFunc != nil {
		return m.IncrementOrdersCountFunc(ctx, id)
	}
	return nil
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
