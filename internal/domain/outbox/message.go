package outbox

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

// Topics the dispatcher routes on.
const (
	TopicOrderCreated       = "order.created"
	TopicOrderStatusChanged = "order.status_changed"
	TopicOrderAssigned      = "order.assigned"
	TopicOrderCommentAdded  = "order.comment_added"
	TopicTicketCreated      = "ticket.created"
	TopicTicketCommentAdded = "ticket.comment_added"
	TopicTicketClosed       = "ticket.closed"
	TopicInvoiceCreated     = "invoice.created"
	TopicInvoicePaid        = "invoice.paid"
	TopicFeedbackRequested  = "feedback.requested"
)

// Message is a queued side-effect command. Writes to the business tables
// and the enqueue happen before the request returns; delivery (in-app
// notification rows, websocket push, email) runs from a background worker
// that polls this table, so a crashed process never loses a fan-out.
type Message struct {
	id          uint
	topic       string
	payload     []byte
	status      Status
	attempts    int
	lastError   string
	availableAt time.Time
	processedAt *time.Time
	createdAt   time.Time
}

func NewMessage(topic string, payload []byte) (*Message, error) {
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("payload is required")
	}
	now := time.Now()
	return &Message{
		topic:       topic,
		payload:     payload,
		status:      StatusPending,
		availableAt: now,
		createdAt:   now,
	}, nil
}

func ReconstructMessage(
	id uint,
	topic string,
	payload []byte,
	status Status,
	attempts int,
	lastError string,
	availableAt time.Time,
	processedAt *time.Time,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	return &Message{
		id:          id,
		topic:       topic,
		payload:     payload,
		status:      status,
		attempts:    attempts,
		lastError:   lastError,
		availableAt: availableAt,
		processedAt: processedAt,
		createdAt:   createdAt,
	}, nil
}

func (m *Message) ID() uint               { return m.id }
func (m *Message) Topic() string          { return m.topic }
func (m *Message) Payload() []byte        { return m.payload }
func (m *Message) Status() Status         { return m.status }
func (m *Message) Attempts() int          { return m.attempts }
func (m *Message) LastError() string      { return m.lastError }
func (m *Message) AvailableAt() time.Time { return m.availableAt }
func (m *Message) ProcessedAt() *time.Time { return m.processedAt }
func (m *Message) CreatedAt() time.Time   { return m.createdAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// MarkDone records successful delivery.
func (m *Message) MarkDone() {
	m.status = StatusDone
	now := time.Now()
	m.processedAt = &now
}

// RecordFailure increments the attempt counter and schedules a retry with
// linear backoff. Once maxAttempts is reached the message is parked as
// failed and left for operator inspection.
func (m *Message) RecordFailure(cause error, maxAttempts int, backoff time.Duration) {
	m.attempts++
	if cause != nil {
		m.lastError = cause.Error()
	}
	if m.attempts >= maxAttempts {
		m.status = StatusFailed
		now := time.Now()
		m.processedAt = &now
		return
	}
	m.availableAt = time.Now().Add(backoff * time.Duration(m.attempts))
}
