package outbox

import "context"

// Repository persists outbox messages.
type Repository interface {
	Enqueue(ctx context.Context, m *Message) error
	// ListDue returns pending messages whose availableAt has passed,
	// oldest first.
	ListDue(ctx context.Context, limit int) ([]*Message, error)
	Update(ctx context.Context, m *Message) error
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
