package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/notification/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/notification"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ListNotificationsQuery struct {
	Actor      authorization.Actor
	UnreadOnly bool
	Offset     int
	Limit      int
}

type ListNotificationsResult struct {
	Notifications []*dto.NotificationDTO `json:"notifications"`
	Total         int64                  `json:"total"`
}

// Notifications are strictly personal, so every use case here keys on
// the actor and needs no resource policy.
type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	notifications, total, err := uc.notificationRepo.ListByUser(
		ctx, query.Actor.UserID, query.UnreadOnly, query.Offset, query.Limit)
	if err != nil {
		return nil, err
	}

	return &ListNotificationsResult{
		Notifications: dto.ToNotificationDTOs(notifications),
		Total:         total,
	}, nil
}
