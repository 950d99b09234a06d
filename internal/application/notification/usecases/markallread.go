package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/notification"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type MarkAllNotificationsReadCommand struct {
	Actor authorization.Actor
}

type MarkAllNotificationsReadResult struct {
	MarkedCount int64 `json:"marked_count"`
}

type MarkAllNotificationsReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAllNotificationsReadUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *MarkAllNotificationsReadUseCase {
	return &MarkAllNotificationsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllNotificationsReadUseCase) Execute(ctx context.Context, cmd MarkAllNotificationsReadCommand) (*MarkAllNotificationsReadResult, error) {
	count, err := uc.notificationRepo.MarkAllRead(ctx, cmd.Actor.UserID)
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications read",
			"user_id", cmd.Actor.UserID, "error", err)
		return nil, err
	}
	return &MarkAllNotificationsReadResult{MarkedCount: count}, nil
}
