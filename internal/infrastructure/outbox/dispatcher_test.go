package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/notification"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/shared/config"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type mockOutboxRepo struct {
	listDueFunc func(ctx context.Context, limit int) ([]*outbox.Message, error)
	updateFunc  func(ctx context.Context, m *outbox.Message) error
}

func (m *mockOutboxRepo) Enqueue(ctx context.Context, msg *outbox.Message) error { return nil }
func (m *mockOutboxRepo) ListDue(ctx context.Context, limit int) ([]*outbox.Message, error) {
	if m.listDueFunc != nil {
		return m.listDueFunc(ctx, limit)
	}
	return nil, nil
}
func (m *mockOutboxRepo) Update(ctx context.Context, msg *outbox.Message) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, msg)
	}
	return nil
}
func (m *mockOutboxRepo) CountByStatus(ctx context.Context) (map[outbox.Status]int64, error) {
	return nil, nil
}

type mockNotificationRepo struct {
	createBatchFunc func(ctx context.Context, ns []*notification.Notification) error
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	return nil
}
func (m *mockNotificationRepo) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	if m.createBatchFunc != nil {
		return m.createBatchFunc(ctx, ns)
	}
	return nil
}
func (m *mockNotificationRepo) FindByID(ctx context.Context, id uint) (*notification.Notification, error) {
	return nil, nil
}
func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}
func (m *mockNotificationRepo) Update(ctx context.Context, n *notification.Notification) error {
	return nil
}
func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}
func (m *mockNotificationRepo) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}

type push struct {
	userID uint
	event  string
}

type mockPublisher struct {
	pushes []push
}

func (m *mockPublisher) PushToUser(userID uint, event string, payload interface{}) {
	m.pushes = append(m.pushes, push{userID: userID, event: event})
}

type mockMailer struct {
	orderStatusFunc func(to, orderRef, status string) error
	sentTo          []string
}

func (m *mockMailer) SendOrderStatusEmail(to, orderRef, status string) error {
	m.sentTo = append(m.sentTo, to)
	if m.orderStatusFunc != nil {
		return m.orderStatusFunc(to, orderRef, status)
	}
	return nil
}
func (m *mockMailer) SendOrderCommentEmail(to, orderRef, author string) error {
	m.sentTo = append(m.sentTo, to)
	return nil
}
func (m *mockMailer) SendTicketReplyEmail(to, subject string, ticketID uint) error {
	m.sentTo = append(m.sentTo, to)
	return nil
}
func (m *mockMailer) SendTicketClosedEmail(to, subject string, ticketID uint) error {
	m.sentTo = append(m.sentTo, to)
	return nil
}
func (m *mockMailer) SendInvoiceEmail(to, number string, amountCents int64) error {
	m.sentTo = append(m.sentTo, to)
	return nil
}
func (m *mockMailer) SendFeedbackRequestEmail(to, campaignName string) error {
	m.sentTo = append(m.sentTo, to)
	return nil
}

func newTestMessage(t *testing.T, id uint, topic string, payload interface{}, attempts int) *outbox.Message {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	msg, err := outbox.ReconstructMessage(
		id, topic, data, outbox.StatusPending, attempts, "",
		time.Now().Add(-time.Second), nil, time.Now(),
	)
	require.NoError(t, err)
	return msg
}

func newTestDispatcher(repo *mockOutboxRepo, notifications *mockNotificationRepo, publisher *mockPublisher, mailer *mockMailer) *Dispatcher {
	return NewDispatcher(repo, notifications, publisher, mailer,
		&config.OutboxConfig{MaxAttempts: 3, BatchSize: 10}, logger.NewNop())
}

func TestDispatcher_DispatchDue_OrderStatusFanOut(t *testing.T) {
	payload := outbox.OrderEventPayload{
		OrderID:   7,
		Reference: "#7",
		OrderType: "guest_post",
		Status:    "Published",
		Recipients: []outbox.Recipient{
			{UserID: 1, Email: "alice@example.com", Name: "Alice"},
			{UserID: 2, Email: "bob@example.com", Name: "Bob"},
		},
	}
	msg := newTestMessage(t, 10, outbox.TopicOrderStatusChanged, payload, 0)

	var updated *outbox.Message
	repo := &mockOutboxRepo{
		listDueFunc: func(ctx context.Context, limit int) ([]*outbox.Message, error) {
			return []*outbox.Message{msg}, nil
		},
		updateFunc: func(ctx context.Context, m *outbox.Message) error {
			updated = m
			return nil
		},
	}

	var created []*notification.Notification
	notifications := &mockNotificationRepo{
		createBatchFunc: func(ctx context.Context, ns []*notification.Notification) error {
			created = ns
			return nil
		},
	}
	publisher := &mockPublisher{}
	mailer := &mockMailer{}

	d := newTestDispatcher(repo, notifications, publisher, mailer)
	err := d.DispatchDue(context.Background())

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, outbox.StatusDone, updated.Status())
	assert.NotNil(t, updated.ProcessedAt())

	require.Len(t, created, 2)
	assert.Equal(t, notification.KindOrderStatus, created[0].Kind())
	assert.Equal(t, uint(1), created[0].UserID())
	assert.Equal(t, uint(2), created[1].UserID())
	assert.Equal(t, "order", created[0].ResourceType())
	assert.Equal(t, uint(7), created[0].ResourceID())

	require.Len(t, publisher.pushes, 2)
	assert.Equal(t, "notification", publisher.pushes[0].event)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, mailer.sentTo)
}

func TestDispatcher_DispatchDue_RetriesOnPersistFailure(t *testing.T) {
	payload := outbox.TicketEventPayload{
		TicketID:   3,
		Subject:    "broken link",
		Recipients: []outbox.Recipient{{UserID: 1, Email: "alice@example.com"}},
	}
	msg := newTestMessage(t, 11, outbox.TopicTicketClosed, payload, 0)

	var updated *outbox.Message
	repo := &mockOutboxRepo{
		listDueFunc: func(ctx context.Context, limit int) ([]*outbox.Message, error) {
			return []*outbox.Message{msg}, nil
		},
		updateFunc: func(ctx context.Context, m *outbox.Message) error {
			updated = m
			return nil
		},
	}
	notifications := &mockNotificationRepo{
		createBatchFunc: func(ctx context.Context, ns []*notification.Notification) error {
			return errors.New("db unavailable")
		},
	}

	d := newTestDispatcher(repo, notifications, &mockPublisher{}, &mockMailer{})
	err := d.DispatchDue(context.Background())

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, outbox.StatusPending, updated.Status())
	assert.Equal(t, 1, updated.Attempts())
	assert.True(t, updated.AvailableAt().After(time.Now()))
	assert.Contains(t, updated.LastError(), "db unavailable")
}

func TestDispatcher_DispatchDue_ParksAfterMaxAttempts(t *testing.T) {
	payload := outbox.TicketEventPayload{
		TicketID:   3,
		Subject:    "broken link",
		Recipients: []outbox.Recipient{{UserID: 1}},
	}
	msg := newTestMessage(t, 12, outbox.TopicTicketClosed, payload, 2)

	var updated *outbox.Message
	repo := &mockOutboxRepo{
		listDueFunc: func(ctx context.Context, limit int) ([]*outbox.Message, error) {
			return []*outbox.Message{msg}, nil
		},
		updateFunc: func(ctx context.Context, m *outbox.Message) error {
			updated = m
			return nil
		},
	}
	notifications := &mockNotificationRepo{
		createBatchFunc: func(ctx context.Context, ns []*notification.Notification) error {
			return errors.New("db unavailable")
		},
	}

	d := newTestDispatcher(repo, notifications, &mockPublisher{}, &mockMailer{})
	err := d.DispatchDue(context.Background())

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, outbox.StatusFailed, updated.Status())
	assert.Equal(t, 3, updated.Attempts())
	assert.NotNil(t, updated.ProcessedAt())
}

func TestDispatcher_DispatchDue_UnknownTopicFails(t *testing.T) {
	msg := newTestMessage(t, 13, "order.exploded", map[string]string{"x": "y"}, 0)

	var updated *outbox.Message
	repo := &mockOutboxRepo{
		listDueFunc: func(ctx context.Context, limit int) ([]*outbox.Message, error) {
			return []*outbox.Message{msg}, nil
		},
		updateFunc: func(ctx context.Context, m *outbox.Message) error {
			updated = m
			return nil
		},
	}

	d := newTestDispatcher(repo, &mockNotificationRepo{}, &mockPublisher{}, &mockMailer{})
	err := d.DispatchDue(context.Background())

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 1, updated.Attempts())
	assert.Contains(t, updated.LastError(), "unknown topic")
}

func TestDispatcher_DispatchDue_MailFailureDoesNotRetry(t *testing.T) {
	payload := outbox.OrderEventPayload{
		OrderID:    7,
		Reference:  "#7",
		Status:     "Sent",
		Recipients: []outbox.Recipient{{UserID: 1, Email: "alice@example.com"}},
	}
	msg := newTestMessage(t, 14, outbox.TopicOrderStatusChanged, payload, 0)

	var updated *outbox.Message
	repo := &mockOutboxRepo{
		listDueFunc: func(ctx context.Context, limit int) ([]*outbox.Message, error) {
			return []*outbox.Message{msg}, nil
		},
		updateFunc: func(ctx context.Context, m *outbox.Message) error {
			updated = m
			return nil
		},
	}
	mailer := &mockMailer{
		orderStatusFunc: func(to, orderRef, status string) error {
			return errors.New("smtp timeout")
		},
	}

	d := newTestDispatcher(repo, &mockNotificationRepo{}, &mockPublisher{}, mailer)
	err := d.DispatchDue(context.Background())

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, outbox.StatusDone, updated.Status())
}
