package user

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
)

// ListFilter narrows user listings. Zero values mean "no filter".
type ListFilter struct {
	Role           authorization.Role
	OrganizationID uint
	ActiveOnly     bool
	Search         string
}

// Repository persists user accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*User, int64, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, filter ListFilter) (int64, error)
}

// AssignmentRepository persists manager-to-user assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, a *Assignment) error
	FindByManagerAndUser(ctx context.Context, managerID, userID uint) (*Assignment, error)
	ListActiveByManager(ctx context.Context, managerID uint) ([]*Assignment, error)
	ManagedUserIDs(ctx context.Context, managerID uint) ([]uint, error)
	Update(ctx context.Context, a *Assignment) error
	HasActiveAssignment(ctx context.Context, managerID, userID uint) (bool, error)
}
