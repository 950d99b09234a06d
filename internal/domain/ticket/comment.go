package ticket

import (
	"fmt"
	"time"
)

// Comment is a message on a ticket's thread.
type Comment struct {
	id          uint
	ticketID    uint
	userID      uint
	content     string
	isFromStaff bool
	createdAt   time.Time
}

func NewComment(ticketID, userID uint, content string, isFromStaff bool) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if content == "" {
		return nil, fmt.Errorf("comment content cannot be empty")
	}
	return &Comment{
		ticketID:    ticketID,
		userID:      userID,
		content:     content,
		isFromStaff: isFromStaff,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructComment(id, ticketID, userID uint, content string, isFromStaff bool, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	return &Comment{
		id:          id,
		ticketID:    ticketID,
		userID:      userID,
		content:     content,
		isFromStaff: isFromStaff,
		createdAt:   createdAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) UserID() uint         { return c.userID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) IsFromStaff() bool    { return c.isFromStaff }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

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
