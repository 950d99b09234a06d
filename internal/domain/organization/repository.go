package organization

import "context"

// Repository persists organizations.
type Repository interface {
	Create(ctx context.Context, o *Organization) error
	FindByID(ctx context.Context, id uint) (*Organization, error)
	FindByName(ctx context.Context, name string) (*Organization, error)
	List(ctx context.Context, offset, limit int) ([]*Organization, int64, error)
	Update(ctx context.Context, o *Organization) error
	Delete(ctx context.Context, id uint) error
	// IncrementOrdersCount bumps the denormalized order counter. Callers
	// treat failures as non-fatal.
	IncrementOrdersCount(ctx context.Context, id uint) error
}
