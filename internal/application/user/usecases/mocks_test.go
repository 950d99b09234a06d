package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

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
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.NewNotFoundError("user not found")
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
	return nil, errors.NewNotFoundError("organization not found")
}

func (m *mockOrganizationRepository) FindByName(ctx context.Context, name string) (*organization.Organization, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, errors.NewNotFoundError("organization not found")
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
	return nil, errors.NewNotFoundError("assignment not found")
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

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if "hashed:"+password != hash {
		return errors.NewUnauthorizedError("password mismatch")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(actor authorization.Actor) (string, int64, error)
}

func (m *mockTokenIssuer) Generate(actor authorization.Actor) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(actor)
	}
	return "token", 3600, nil
}

type mockLoginThrottle struct {
	AllowFunc func(email string) (bool, error)
}

func (m *mockLoginThrottle) Allow(email string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(email)
	}
	return true, nil
}
