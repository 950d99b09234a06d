package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/notification"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type mockNotificationRepository struct {
	CreateFunc      func(ctx context.Context, n *notification.Notification) error
	CreateBatchFunc func(ctx context.Context, ns []*notification.Notification) error
	FindByIDFunc    func(ctx context.Context, id uint) (*notification.Notification, error)
	ListByUserFunc  func(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]*notification.Notification, int64, error)
	UpdateFunc      func(ctx context.Context, n *notification.Notification) error
	MarkAllReadFunc func(ctx context.Context, userID uint) (int64, error)
	CountUnreadFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, ns)
	}
	return nil
}

func (m *mockNotificationRepository) FindByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("notification not found")
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]*notification.Notification, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, unreadOnly, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func testActor(userID uint, role authorization.Role) authorization.Actor {
	return authorization.Actor{UserID: userID, Role: role, OrganizationID: 1}
}

func testNotification(t *testing.T, id, userID uint) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(userID, notification.KindOrderStatus, "Order #1 status changed", "", "order", 1)
	require.NoError(t, err)
	require.NoError(t, n.SetID(id))
	return n
}

func TestListNotificationsUseCase_ScopedToActor(t *testing.T) {
	var listedUser uint
	var listedUnread bool
	repo := &mockNotificationRepository{
		ListByUserFunc: func(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]*notification.Notification, int64, error) {
			listedUser = userID
			listedUnread = unreadOnly
			return []*notification.Notification{testNotification(t, 1, userID)}, 1, nil
		},
	}

	uc := NewListNotificationsUseCase(repo, logger.NewNop())

	result, err := uc.Execute(context.Background(), ListNotificationsQuery{
		Actor:      testActor(5, authorization.RoleUser),
		UnreadOnly: true,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), listedUser)
	assert.True(t, listedUnread)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, "order_status", result.Notifications[0].Kind)
}

func TestMarkNotificationReadUseCase_MarksAndStampsReadAt(t *testing.T) {
	n := testNotification(t, 1, 5)
	var saved bool
	repo := &mockNotificationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
		UpdateFunc: func(ctx context.Context, n *notification.Notification) error {
			saved = true
			return nil
		},
	}

	uc := NewMarkNotificationReadUseCase(repo, logger.NewNop())

	err := uc.Execute(context.Background(), MarkNotificationReadCommand{
		Actor:          testActor(5, authorization.RoleUser),
		NotificationID: 1,
	})
	require.NoError(t, err)

	assert.True(t, n.IsRead())
	require.NotNil(t, n.ReadAt())
	assert.True(t, saved)
}

func TestMarkNotificationReadUseCase_OtherUsersNotificationReadsAsMissing(t *testing.T) {
	n := testNotification(t, 1, 5)
	repo := &mockNotificationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
	}

	uc := NewMarkNotificationReadUseCase(repo, logger.NewNop())

	err := uc.Execute(context.Background(), MarkNotificationReadCommand{
		Actor:          testActor(9, authorization.RoleUser),
		NotificationID: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, n.IsRead())
}

func TestMarkNotificationReadUseCase_SecondCallIsNoOp(t *testing.T) {
	n := testNotification(t, 1, 5)
	n.MarkRead()
	firstReadAt := n.ReadAt()

	repo := &mockNotificationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return n, nil
		},
		UpdateFunc: func(ctx context.Context, n *notification.Notification) error {
			require.Fail(t, "already-read notification must not be rewritten")
			return nil
		},
	}

	uc := NewMarkNotificationReadUseCase(repo, logger.NewNop())

	err := uc.Execute(context.Background(), MarkNotificationReadCommand{
		Actor:          testActor(5, authorization.RoleUser),
		NotificationID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, firstReadAt, n.ReadAt())
}

func TestMarkAllNotificationsReadUseCase_ReportsCount(t *testing.T) {
	repo := &mockNotificationRepository{
		MarkAllReadFunc: func(ctx context.Context, userID uint) (int64, error) {
			assert.Equal(t, uint(5), userID)
			return 7, nil
		},
	}

	uc := NewMarkAllNotificationsReadUseCase(repo, logger.NewNop())

	result, err := uc.Execute(context.Background(), MarkAllNotificationsReadCommand{
		Actor: testActor(5, authorization.RoleUser),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.MarkedCount)
}

func TestUnreadCountUseCase(t *testing.T) {
	repo := &mockNotificationRepository{
		CountUnreadFunc: func(ctx context.Context, userID uint) (int64, error) {
			return 3, nil
		},
	}

	uc := NewUnreadCountUseCase(repo, logger.NewNop())

	result, err := uc.Execute(context.Background(), UnreadCountQuery{
		Actor: testActor(5, authorization.RoleUser),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Count)
}
