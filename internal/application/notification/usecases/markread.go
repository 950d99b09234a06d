package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/notification"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type MarkNotificationReadCommand struct {
	Actor          authorization.Actor
	NotificationID uint
}

type MarkNotificationReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkNotificationReadUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, cmd MarkNotificationReadCommand) error {
	n, err := uc.notificationRepo.FindByID(ctx, cmd.NotificationID)
	if err != nil {
		return err
	}
	if n.UserID() != cmd.Actor.UserID {
		// Another user's notification reads as missing.
		return errors.NewNotFoundError("notification not found")
	}
	if n.IsRead() {
		return nil
	}

	n.MarkRead()
	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to mark notification read",
			"notification_id", cmd.NotificationID, "error", err)
		return err
	}
	return nil
}
