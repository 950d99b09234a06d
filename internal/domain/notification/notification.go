package notification

import (
	"fmt"
	"time"
)

// Kind classifies a notification so clients can route and render it.
type Kind string

const (
	KindOrderStatus     Kind = "order_status"
	KindOrderComment    Kind = "order_comment"
	KindOrderAssigned   Kind = "order_assigned"
	KindTicketComment   Kind = "ticket_comment"
	KindTicketClosed    Kind = "ticket_closed"
	KindInvoiceCreated  Kind = "invoice_created"
	KindInvoicePaid     Kind = "invoice_paid"
	KindFeedbackRequest Kind = "feedback_request"
	KindSystem          Kind = "system"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindOrderStatus, KindOrderComment, KindOrderAssigned,
		KindTicketComment, KindTicketClosed,
		KindInvoiceCreated, KindInvoicePaid,
		KindFeedbackRequest, KindSystem:
		return true
	}
	return false
}

// Notification is a per-user in-app message, also fanned out over the
// websocket hub when the user is connected.
type Notification struct {
	id           uint
	userID       uint
	kind         Kind
	title        string
	body         string
	resourceType string
	resourceID   uint
	read         bool
	readAt       *time.Time
	createdAt    time.Time
}

func NewNotification(userID uint, kind Kind, title, body, resourceType string, resourceID uint) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid notification kind: %s", kind)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	return &Notification{
		userID:       userID,
		kind:         kind,
		title:        title,
		body:         body,
		resourceType: resourceType,
		resourceID:   resourceID,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructNotification(
	id, userID uint,
	kind Kind,
	title, body, resourceType string,
	resourceID uint,
	read bool,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	return &Notification{
		id:           id,
		userID:       userID,
		kind:         kind,
		title:        title,
		body:         body,
		resourceType: resourceType,
		resourceID:   resourceID,
		read:         read,
		readAt:       readAt,
		createdAt:    createdAt,
	}, nil
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) UserID() uint         { return n.userID }
func (n *Notification) Kind() Kind           { return n.kind }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Body() string         { return n.body }
func (n *Notification) ResourceType() string { return n.resourceType }
func (n *Notification) ResourceID() uint     { return n.resourceID }
func (n *Notification) IsRead() bool         { return n.read }
func (n *Notification) ReadAt() *time.Time   { return n.readAt }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkRead is idempotent; the first call stamps readAt.
func (n *Notification) MarkRead() {
	if n.read {
		return
	}
	n.read = true
	now := time.Now()
	n.readAt = &now
}
