package order

import "context"

// ListFilter narrows order listings. Zero values mean "no filter".
type ListFilter struct {
	UserID         uint
	UserIDs        []uint
	OrganizationID uint
	OrderType      OrderType
	Status         Status
	AssignedTo     uint
}

// Repository persists orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Order, int64, error)
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, filter ListFilter) (map[Status]int64, error)
}

// CommentRepository persists order thread comments.
type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	FindByID(ctx context.Context, id uint) (*Comment, error)
	ListByOrder(ctx context.Context, orderID uint) ([]*Comment, error)
	Update(ctx context.Context, c *Comment) error
	CountUnreadForUser(ctx context.Context, orderID, userID uint) (int64, error)
}
