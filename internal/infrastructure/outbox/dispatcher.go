// Package outbox runs the background worker that turns queued messages
// into in-app notifications, websocket pushes and transactional email.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/notification"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/email"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/realtime"
	"github.com/linkdesk-io/linkdesk/internal/shared/config"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

// retryBackoff is the base delay between attempts; the message entity
// scales it linearly with the attempt count.
const retryBackoff = 30 * time.Second

const (
	defaultBatchSize   = 50
	defaultMaxAttempts = 5
)

type Dispatcher struct {
	repo          outbox.Repository
	notifications notification.Repository
	publisher     realtime.Publisher
	mailer        email.Service
	batchSize     int
	maxAttempts   int
	log           logger.Interface
}

func NewDispatcher(
	repo outbox.Repository,
	notifications notification.Repository,
	publisher realtime.Publisher,
	mailer email.Service,
	cfg *config.OutboxConfig,
	log logger.Interface,
) *Dispatcher {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Dispatcher{
		repo:          repo,
		notifications: notifications,
		publisher:     publisher,
		mailer:        mailer,
		batchSize:     batchSize,
		maxAttempts:   maxAttempts,
		log:           log,
	}
}

// DispatchDue processes one batch of due messages. Each message succeeds or
// fails independently; a failed message is rescheduled with backoff and
// parked once it exhausts its attempts.
func (d *Dispatcher) DispatchDue(ctx context.Context) error {
	messages, err := d.repo.ListDue(ctx, d.batchSize)
	if err != nil {
		return fmt.Errorf("failed to load due messages: %w", err)
	}

	for _, msg := range messages {
		if err := d.handle(ctx, msg); err != nil {
			msg.RecordFailure(err, d.maxAttempts, retryBackoff)
			d.log.Warnw("outbox message failed",
				"message_id", msg.ID(),
				"topic", msg.Topic(),
				"attempts", msg.Attempts(),
				"status", string(msg.Status()),
				"error", err,
			)
		} else {
			msg.MarkDone()
		}

		if err := d.repo.Update(ctx, msg); err != nil {
			d.log.Errorw("failed to persist outbox message state",
				"message_id", msg.ID(),
				"error", err,
			)
		}
	}
	return nil
}

func (d *Dispatcher) handle(ctx context.Context, msg *outbox.Message) error {
	switch msg.Topic() {
	case outbox.TopicOrderCreated, outbox.TopicOrderStatusChanged:
		return d.handleOrderStatus(ctx, msg)
	case outbox.TopicOrderAssigned:
		return d.handleOrderAssigned(ctx, msg)
	case outbox.TopicOrderCommentAdded:
		return d.handleOrderComment(ctx, msg)
	case outbox.TopicTicketCreated:
		return d.handleTicketCreated(ctx, msg)
	case outbox.TopicTicketCommentAdded:
		return d.handleTicketComment(ctx, msg)
	case outbox.TopicTicketClosed:
		return d.handleTicketClosed(ctx, msg)
	case outbox.TopicInvoiceCreated:
		return d.handleInvoiceCreated(ctx, msg)
	case outbox.TopicInvoicePaid:
		return d.handleInvoicePaid(ctx, msg)
	case outbox.TopicFeedbackRequested:
		return d.handleFeedbackRequested(ctx, msg)
	default:
		return fmt.Errorf("unknown topic: %s", msg.Topic())
	}
}

func (d *Dispatcher) handleOrderStatus(ctx context.Context, msg *outbox.Message) error {
	var p outbox.OrderEventPayload
	if err := json.Unmarshal(msg.Payload(), &p); err != nil {
		return fmt.Errorf("failed to decode order payload: %w", err)
	}

	title := fmt.Sprintf("Order %s is now %s", p.Reference, p.Status)
	body := fmt.Sprintf("Order %s moved to status %s.", p.Reference, p.Status)
	if msg.Topic() == outbox.TopicOrderCreated {
		title = fmt.Sprintf("New order %s", p.Reference)
		body = fmt.Sprintf("A new %s order %s was placed with status %s.", p.OrderType, p.Reference, p.Status)
	}

	return d.fanOut(ctx, p.Recipients, notification.KindOrderStatus, title, body, "order", p.OrderID,
		func(r outbox.Recipient) error {
			return d.mailer.SendOrderStatusEmail(r.Email, p.Reference, p.Status)
		})
}

func (d *Dispatcher) handleOrderAssigned(ctx context.Context, msg *outbox.Message) error {
	var p outbox.OrderEventPayload
	if err := json.Unmarshal(msg.Payload(), &p); err != nil {
		return fmt.Errorf("failed to decode order payload: %w", err)
	}

	title := fmt.Sprintf("Order %s assigned to you", p.Reference)
	body := fmt.Sprintf("You have been assigned order %s.", p.Reference)
	return d.fanOut(ctx, p.Recipients, notification.KindOrderAssigned, title, body, "order", p.OrderID, nil)
}

func (d *Dispatcher) handleOrderComment(ctx context.Context, msg *outbox.Message) error {
	var p outbox.OrderEventPayload
	if err := json.Unmarshal(msg.Payload(), &p); err != nil {
		return fmt.Errorf("failed to decode order payload: %w", err)
	}

	title := fmt.Sprintf("New comment on order %s", p.Reference)
	body := fmt.Sprintf("%s commented on order %s.", p.Author, p.Reference)
	return d.fanOut(ctx, p.Recipients, notification.KindOrderComment, title, body, "order", p.OrderID,
		func(r outbox.Recipient) error {
			return d.mailer.SendOrderCommentEmail(r.Email, p.Reference, p.Author)
		})
}

func (d *Dispatcher) handleTicketCreated(ctx context.Context, msg *outbox.Message) error {
	var p outbox.TicketEventPayload
	if err := json.Unmarshal(msg.Payload(), &p); err != nil {
		return fmt.Errorf("failed to decode ticket payload: %w", err)
	}

	title := fmt.Sprintf("New support ticket #%d", p.TicketID)
	body := fmt.Sprintf("Ticket #%d opened: %s", p.TicketID, p.Subject)
	return d.fanOut(ctx, p.Recipients, notification.KindSystem, title, body, "ticket", p.TicketID, nil)
}

func (d *Dispatcher) handleTicketComment(ctx context.Context, msg *outbox.Message) error {
	var p outbox.TicketEventPayload
	if err := json.Unmarshal(msg.Payload(), &p); err != nil {
		return fmt.Errorf("failed to decode ticket payload: %w", err)
	}

	title := fmt.Sprintf("New reply on ticket #%d", p.TicketID)
	body := fmt.Sprintf("%s replied on ticket #%d (%s).", p.Author, p.TicketID, p.Subject)
	return d.fanOut(ctx, p.Recipients, notification.KindTicketComment, title, body, "ticket", p.TicketID,
		func(r outbox.Recipient) error {
			return d.mailer.SendTicketReplyEmail(r.Email, p.Subject, p.TicketID)
		})
}

func (d *Dispatcher) handleTicketClosed(ctx context.Context, msg *outbox.Message) error {
	var p outbox.TicketEventPayload
	if err := json.Unmarshal(msg.Payload(), &p); err != nil {
		return fmt.Errorf("failed to decode ticket payload: %w", err)
	}

	title := fmt.Sprintf("Ticket #%d closed", p.TicketID)
	body := fmt.Sprintf("Your support ticket #%d (%s) has been closed.", p.TicketID, p.Subject)
	return d.fanOut(ctx, p.Recipients, notification.KindTicketClosed, title, body, "ticket", p.TicketID,
		func(r outbox.Recipient) error {
			return d.mailer.SendTicketClosedEmail(r.Email, p.Subject, p.TicketID)
		})
}

func (d *Dispatcher) handleInvoiceCreated(ctx context.Context, msg *outbox.Message) error {
	var p outbox.InvoiceEventPayload
	if err := json.Unmarshal(msg.Payload(), &p); err != nil {
		return fmt.Errorf("failed to decode invoice payload: %w", err)
	}

	title := fmt.Sprintf("Invoice %s issued", p.Number)
	body := fmt.Sprintf("Invoice %s for $%d.%02d has been issued to your account.", p.Number, p.AmountCents/100, p.AmountCents%100)
	return d.fanOut(ctx, p.Recipients, notification.KindInvoiceCreated, title, body, "invoice", p.InvoiceID,
		func(r outbox.Recipient) error {
			return d.mailer.SendInvoiceEmail(r.Email, p.Number, p.AmountCents)
		})
}

func (d *Dispatcher) handleInvoicePaid(ctx context.Context, msg *outbox.Message) error {
	var p outbox.InvoiceEventPayload
	if err := json.Unmarshal(msg.Payload(), &p); err != nil {
		return fmt.Errorf("failed to decode invoice payload: %w", err)
	}

	title := fmt.Sprintf("Invoice %s paid", p.Number)
	body := fmt.Sprintf("Invoice %s has been marked as paid.", p.Number)
	return d.fanOut(ctx, p.Recipients, notification.KindInvoicePaid, title, body, "invoice", p.InvoiceID, nil)
}

func (d *Dispatcher) handleFeedbackRequested(ctx context.Context, msg *outbox.Message) error {
	var p outbox.FeedbackEventPayload
	if err := json.Unmarshal(msg.Payload(), &p); err != nil {
		return fmt.Errorf("failed to decode feedback payload: %w", err)
	}

	title := "We'd love your feedback"
	body := fmt.Sprintf("Please take a moment to answer the %q survey.", p.CampaignName)
	return d.fanOut(ctx, p.Recipients, notification.KindFeedbackRequest, title, body, "feedback_campaign", p.CampaignID,
		func(r outbox.Recipient) error {
			return d.mailer.SendFeedbackRequestEmail(r.Email, p.CampaignName)
		})
}

// wsNotification is the websocket representation of a notification row.
type wsNotification struct {
	ID           uint      `json:"id"`
	Kind         string    `json:"kind"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	ResourceType string    `json:"resource_type"`
	ResourceID   uint      `json:"resource_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// fanOut persists a notification row per recipient, then pushes it over the
// hub and sends mail. A database failure aborts so the message retries; a
// mail failure is only logged, because retrying the whole message would
// duplicate the already-persisted rows.
func (d *Dispatcher) fanOut(
	ctx context.Context,
	recipients []outbox.Recipient,
	kind notification.Kind,
	title, body, resourceType string,
	resourceID uint,
	sendMail func(outbox.Recipient) error,
) error {
	if len(recipients) == 0 {
		return nil
	}

	rows := make([]*notification.Notification, 0, len(recipients))
	for _, r := range recipients {
		n, err := notification.NewNotification(r.UserID, kind, title, body, resourceType, resourceID)
		if err != nil {
			return fmt.Errorf("failed to build notification: %w", err)
		}
		rows = append(rows, n)
	}

	if err := d.notifications.CreateBatch(ctx, rows); err != nil {
		return fmt.Errorf("failed to persist notifications: %w", err)
	}

	for i, r := range recipients {
		n := rows[i]
		d.publisher.PushToUser(r.UserID, "notification", wsNotification{
			ID:           n.ID(),
			Kind:         string(n.Kind()),
			Title:        n.Title(),
			Body:         n.Body(),
			ResourceType: n.ResourceType(),
			ResourceID:   n.ResourceID(),
			CreatedAt:    n.CreatedAt(),
		})

		if sendMail == nil || r.Email == "" {
			continue
		}
		if err := sendMail(r); err != nil {
			d.log.Warnw("failed to send notification email",
				"user_id", r.UserID,
				"kind", string(kind),
				"error", err,
			)
		}
	}
	return nil
}
