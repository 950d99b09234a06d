package inventory

import "context"

// ListFilter narrows inventory listings. Zero values mean "no filter".
// VisibleToOrg restricts results to global domains plus the organization's
// own scoped ones.
type ListFilter struct {
	VisibleToOrg uint
	Category     string
	MinRating    int
	MaxPriceGP   int64
	MaxPriceNE   int64
	Search       string
}

// Repository persists inventory domains.
type Repository interface {
	Create(ctx context.Context, d *Domain) error
	FindByID(ctx context.Context, id uint) (*Domain, error)
	FindByName(ctx context.Context, name string) (*Domain, error)
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Domain, int64, error)
	Update(ctx context.Context, d *Domain) error
	Delete(ctx context.Context, id uint) error
	// ListStaleRatings returns domains whose rating has not been refreshed
	// within maxAgeHours, oldest first.
	ListStaleRatings(ctx context.Context, maxAgeHours int, limit int) ([]*Domain, error)
}
