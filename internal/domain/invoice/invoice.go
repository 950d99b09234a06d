package invoice

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Invoice bills a user for placed orders. Amounts are integer cents; no
// floating point money anywhere.
type Invoice struct {
	id             uint
	userID         uint
	organizationID uint
	number         string
	amountCents    int64
	currency       string
	status         Status
	dueDate        time.Time
	paidAt         *time.Time
	notes          string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewInvoice(userID, organizationID uint, number string, amountCents int64, dueDate time.Time) (*Invoice, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if number == "" {
		return nil, fmt.Errorf("invoice number is required")
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if dueDate.IsZero() {
		return nil, fmt.Errorf("due date is required")
	}

	now := time.Now()
	return &Invoice{
		userID:         userID,
		organizationID: organizationID,
		number:         number,
		amountCents:    amountCents,
		currency:       "USD",
		status:         StatusPending,
		dueDate:        dueDate,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructInvoice(
	id, userID, organizationID uint,
	number string,
	amountCents int64,
	currency string,
	status Status,
	dueDate time.Time,
	paidAt *time.Time,
	notes string,
	createdAt, updatedAt time.Time,
) (*Invoice, error) {
	if id == 0 {
		return nil, fmt.Errorf("invoice ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid invoice status: %s", status)
	}
	return &Invoice{
		id:             id,
		userID:         userID,
		organizationID: organizationID,
		number:         number,
		amountCents:    amountCents,
		currency:       currency,
		status:         status,
		dueDate:        dueDate,
		paidAt:         paidAt,
		notes:          notes,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (i *Invoice) ID() uint             { return i.id }
func (i *Invoice) UserID() uint         { return i.userID }
func (i *Invoice) OrganizationID() uint { return i.organizationID }
func (i *Invoice) Number() string       { return i.number }
func (i *Invoice) AmountCents() int64   { return i.amountCents }
func (i *Invoice) Currency() string     { return i.currency }
func (i *Invoice) Status() Status       { return i.status }
func (i *Invoice) DueDate() time.Time   { return i.dueDate }
func (i *Invoice) PaidAt() *time.Time   { return i.paidAt }
func (i *Invoice) Notes() string        { return i.notes }
func (i *Invoice) CreatedAt() time.Time { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time { return i.updatedAt }

func (i *Invoice) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("invoice ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("invoice ID cannot be zero")
	}
	i.id = id
	return nil
}

// MarkPaid settles the invoice and stamps paidAt. Paying a cancelled
// invoice is an error; paying an overdue one is fine.
func (i *Invoice) MarkPaid() error {
	switch i.status {
	case StatusPaid:
		return fmt.Errorf("invoice is already paid")
	case StatusCancelled:
		return fmt.Errorf("cannot pay a cancelled invoice")
	}
	i.status = StatusPaid
	now := time.Now()
	i.paidAt = &now
	i.updatedAt = now
	return nil
}

// MarkOverdue flags a pending invoice whose due date has passed.
func (i *Invoice) MarkOverdue(now time.Time) error {
	if i.status != StatusPending {
		return fmt.Errorf("only pending invoices can become overdue")
	}
	if now.Before(i.dueDate) {
		return fmt.Errorf("invoice is not yet due")
	}
	i.status = StatusOverdue
	i.updatedAt = time.Now()
	return nil
}

func (i *Invoice) Cancel() error {
	if i.status == StatusPaid {
		return fmt.Errorf("cannot cancel a paid invoice")
	}
	i.status = StatusCancelled
	i.updatedAt = time.Now()
	return nil
}

func (i *Invoice) SetNotes(notes string) {
	i.notes = notes
	i.updatedAt = time.Now()
}
