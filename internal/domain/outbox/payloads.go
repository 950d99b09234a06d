package outbox

import (
	"encoding/json"
	"fmt"
)

// Recipient is resolved by the producer at enqueue time so the dispatcher
// never needs to re-query user records that may have changed since.
type Recipient struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type OrderEventPayload struct {
	OrderID    uint        `json:"order_id"`
	Reference  string      `json:"reference"`
	OrderType  string      `json:"order_type"`
	Status     string      `json:"status,omitempty"`
	Author     string      `json:"author,omitempty"`
	Recipients []Recipient `json:"recipients"`
}

type TicketEventPayload struct {
	TicketID   uint        `json:"ticket_id"`
	Subject    string      `json:"subject"`
	Author     string      `json:"author,omitempty"`
	Recipients []Recipient `json:"recipients"`
}

type InvoiceEventPayload struct {
	InvoiceID   uint        `json:"invoice_id"`
	Number      string      `json:"number"`
	AmountCents int64       `json:"amount_cents"`
	Recipients  []Recipient `json:"recipients"`
}

type FeedbackEventPayload struct {
	CampaignID   uint        `json:"campaign_id"`
	CampaignName string      `json:"campaign_name"`
	Recipients   []Recipient `json:"recipients"`
}

// NewMessageJSON marshals v and wraps it in a pending message.
func NewMessageJSON(topic string, v interface{}) (*Message, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for topic %s: %w", topic, err)
	}
	return NewMessage(topic, payload)
}
