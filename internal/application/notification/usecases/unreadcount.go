package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/notification"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type UnreadCountQuery struct {
	Actor authorization.Actor
}

type UnreadCountResult struct {
	Count int64 `json:"count"`
}

type UnreadCountUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewUnreadCountUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *UnreadCountUseCase {
	return &UnreadCountUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *UnreadCountUseCase) Execute(ctx context.Context, query UnreadCountQuery) (*UnreadCountResult, error) {
	count, err := uc.notificationRepo.CountUnread(ctx, query.Actor.UserID)
	if err != nil {
		return nil, err
	}
	return &UnreadCountResult{Count: count}, nil
}
