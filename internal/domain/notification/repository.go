package notification

import "context"

// Repository persists notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	CreateBatch(ctx context.Context, ns []*Notification) error
	FindByID(ctx context.Context, id uint) (*Notification, error)
	ListByUser(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]*Notification, int64, error)
	Update(ctx context.Context, n *Notification) error
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
}
