package order

import "fmt"

// OrderType distinguishes the two placement products, each with its own
// status vocabulary.
type OrderType string

const (
	TypeGuestPost OrderType = "guest_post"
	TypeNicheEdit OrderType = "niche_edit"
)

func (t OrderType) String() string {
	return string(t)
}

func (t OrderType) IsValid() bool {
	return t == TypeGuestPost || t == TypeNicheEdit
}

func NewOrderType(s string) (OrderType, error) {
	t := OrderType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid order type: %s", s)
	}
	return t, nil
}

// Status is an order workflow status. The legal values depend on the order
// type; there is deliberately no transition table — any authorized caller
// may set any status within the type's vocabulary, and only membership in
// the vocabulary is enforced.
type Status string

const (
	// Guest post vocabulary.
	StatusTitleApprovalPending Status = "Title Approval Pending"
	StatusTitleApproved        Status = "Title Approved"
	StatusContentWriting       Status = "Content Writing"
	StatusSentForPublication   Status = "Sent For Publication"
	StatusPublished            Status = "Published"

	// Niche edit vocabulary.
	StatusSent       Status = "Sent"
	StatusInProgress Status = "In Progress"
	StatusApproved   Status = "Approved"

	// Shared terminal statuses.
	StatusCompleted Status = "Completed"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

var guestPostStatuses = map[Status]bool{
	StatusTitleApprovalPending: true,
	StatusTitleApproved:        true,
	StatusContentWriting:       true,
	StatusSentForPublication:   true,
	StatusPublished:            true,
	StatusCompleted:            true,
	StatusRejected:             true,
	StatusCancelled:            true,
}

var nicheEditStatuses = map[Status]bool{
	StatusSent:       true,
	StatusInProgress: true,
	StatusApproved:   true,
	StatusCompleted:  true,
	StatusRejected:   true,
	StatusCancelled:  true,
}

func (s Status) String() string {
	return string(s)
}

// IsValidFor reports whether the status belongs to the type's vocabulary.
func (s Status) IsValidFor(t OrderType) bool {
	switch t {
	case TypeGuestPost:
		return guestPostStatuses[s]
	case TypeNicheEdit:
		return nicheEditStatuses[s]
	}
	return false
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected || s == StatusCancelled
}

// InitialStatus returns the status every new order of the given type
// starts at.
func InitialStatus(t OrderType) Status {
	if t == TypeGuestPost {
		return StatusTitleApprovalPending
	}
	return StatusSent
}

// StatusesFor returns the full vocabulary for an order type.
func StatusesFor(t OrderType) []Status {
	if t == TypeGuestPost {
		return []Status{
			StatusTitleApprovalPending,
			StatusTitleApproved,
			StatusContentWriting,
			StatusSentForPublication,
			StatusPublished,
			StatusCompleted,
			StatusRejected,
			StatusCancelled,
		}
	}
	return []Status{
		StatusSent,
		StatusInProgress,
		StatusApproved,
		StatusCompleted,
		StatusRejected,
		StatusCancelled,
	}
}
