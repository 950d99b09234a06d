package order

import (
	"fmt"
	"time"
)

// Comment is a message on an order's discussion thread. System messages are
// generated by workflow events (status changes, assignment) rather than
// typed by a person.
type Comment struct {
	id              uint
	orderID         uint
	userID          uint
	content         string
	isFromAdmin     bool
	isSystemMessage bool
	readBy          []uint
	createdAt       time.Time
	updatedAt       time.Time
}

func NewComment(orderID, userID uint, content string, isFromAdmin bool) (*Comment, error) {
	if orderID == 0 {
		return nil, fmt.Errorf("order ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if content == "" {
		return nil, fmt.Errorf("comment content cannot be empty")
	}

	now := time.Now()
	return &Comment{
		orderID:     orderID,
		userID:      userID,
		content:     content,
		isFromAdmin: isFromAdmin,
		// The author has trivially read their own comment.
		readBy:    []uint{userID},
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewSystemComment records a workflow event on the thread.
func NewSystemComment(orderID, actorID uint, content string) (*Comment, error) {
	c, err := NewComment(orderID, actorID, content, true)
	if err != nil {
		return nil, err
	}
	c.isSystemMessage = true
	return c, nil
}

func ReconstructComment(
	id uint,
	orderID uint,
	userID uint,
	content string,
	isFromAdmin bool,
	isSystemMessage bool,
	readBy []uint,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	return &Comment{
		id:              id,
		orderID:         orderID,
		userID:          userID,
		content:         content,
		isFromAdmin:     isFromAdmin,
		isSystemMessage: isSystemMessage,
		readBy:          readBy,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (c *Comment) ID() uint              { return c.id }
func (c *Comment) OrderID() uint         { return c.orderID }
func (c *Comment) UserID() uint          { return c.userID }
func (c *Comment) Content() string       { return c.content }
func (c *Comment) IsFromAdmin() bool     { return c.isFromAdmin }
func (c *Comment) IsSystemMessage() bool { return c.isSystemMessage }
func (c *Comment) ReadBy() []uint        { return c.readBy }
func (c *Comment) CreatedAt() time.Time  { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time  { return c.updatedAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// MarkReadBy appends the reader to the read-receipt list. Idempotent.
func (c *Comment) MarkReadBy(userID uint) bool {
	for _, id := range c.readBy {
		if id == userID {
			return false
		}
	}
	c.readBy = append(c.readBy, userID)
	c.updatedAt = time.Now()
	return true
}

// IsReadBy reports whether the user appears in the read-receipt list.
func (c *Comment) IsReadBy(userID uint) bool {
	for _, id := range c.readBy {
		if id == userID {
			return true
		}
	}
	return false
}
