package ticket

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusWaiting    Status = "waiting"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusWaiting, StatusResolved, StatusClosed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityNormal || p == PriorityHigh
}

// Ticket is a support request. Closing may carry a satisfaction rating;
// a customer replying to a closed ticket reopens it.
type Ticket struct {
	id         uint
	userID     uint
	subject    string
	status     Status
	priority   Priority
	assignedTo *uint
	rating     *int
	closedAt   *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewTicket(userID uint, subject string, priority Priority) (*Ticket, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if priority == "" {
		priority = PriorityNormal
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := time.Now()
	return &Ticket{
		userID:    userID,
		subject:   subject,
		status:    StatusOpen,
		priority:  priority,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTicket(
	id, userID uint,
	subject string,
	status Status,
	priority Priority,
	assignedTo *uint,
	rating *int,
	closedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}
	return &Ticket{
		id:         id,
		userID:     userID,
		subject:    subject,
		status:     status,
		priority:   priority,
		assignedTo: assignedTo,
		rating:     rating,
		closedAt:   closedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (t *Ticket) ID() uint             { return t.id }
func (t *Ticket) UserID() uint         { return t.userID }
func (t *Ticket) Subject() string      { return t.subject }
func (t *Ticket) Status() Status       { return t.status }
func (t *Ticket) Priority() Priority   { return t.priority }
func (t *Ticket) AssignedTo() *uint    { return t.assignedTo }
func (t *Ticket) Rating() *int         { return t.rating }
func (t *Ticket) ClosedAt() *time.Time { return t.closedAt }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

func (t *Ticket) IsClosed() bool {
	return t.status == StatusClosed
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) ChangeStatus(newStatus Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid ticket status: %s", newStatus)
	}
	if newStatus == StatusClosed {
		return t.Close(nil)
	}
	t.status = newStatus
	t.closedAt = nil
	t.updatedAt = time.Now()
	return nil
}

// Close marks the ticket closed, optionally recording a satisfaction
// rating between 1 and 5.
func (t *Ticket) Close(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	t.status = StatusClosed
	if rating != nil {
		t.rating = rating
	}
	now := time.Now()
	t.closedAt = &now
	t.updatedAt = now
	return nil
}

// Reopen returns a closed ticket to the open state, keeping any rating
// already left.
func (t *Ticket) Reopen() {
	t.status = StatusOpen
	t.closedAt = nil
	t.updatedAt = time.Now()
}

func (t *Ticket) Assign(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assignedTo = &assigneeID
	if t.status == StatusOpen {
		t.status = StatusInProgress
	}
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) ChangePriority(p Priority) error {
	if !p.IsValid() {
		return fmt.Errorf("invalid priority: %s", p)
	}
	t.priority = p
	t.updatedAt = time.Now()
	return nil
}
