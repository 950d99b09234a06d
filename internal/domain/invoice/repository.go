package invoice

import "context"

// ListFilter narrows invoice listings. Zero values mean "no filter".
type ListFilter struct {
	UserID         uint
	UserIDs        []uint
	OrganizationID uint
	Status         Status
}

// Repository persists invoices.
type Repository interface {
	Create(ctx context.Context, i *Invoice) error
	FindByID(ctx context.Context, id uint) (*Invoice, error)
	FindByNumber(ctx context.Context, number string) (*Invoice, error)
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Invoice, int64, error)
	Update(ctx context.Context, i *Invoice) error
	// ListDuePending returns pending invoices whose due date has passed,
	// for the overdue sweep.
	ListDuePending(ctx context.Context, limit int) ([]*Invoice, error)
	NextNumber(ctx context.Context) (string, error)
	SumAmountCents(ctx context.Context, filter ListFilter) (int64, error)
}
