package ticket

import "context"

// ListFilter narrows ticket listings. Zero values mean "no filter".
type ListFilter struct {
	UserID     uint
	UserIDs    []uint
	Status     Status
	AssignedTo uint
}

// Repository persists tickets.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Ticket, int64, error)
	Update(ctx context.Context, t *Ticket) error
	// CloseAllOpen closes every ticket not already closed and returns the
	// number affected.
	CloseAllOpen(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, filter ListFilter) (map[Status]int64, error)
}

// CommentRepository persists ticket comments.
type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Comment, error)
}
