package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/ticket"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type CloseAllOpenCommand struct {
	Actor authorization.Actor
}

type CloseAllOpenResult struct {
	ClosedCount int64 `json:"closed_count"`
}

// CloseAllOpenUseCase is the admin housekeeping action that closes every
// ticket not already closed, without ratings or per-ticket notifications.
type CloseAllOpenUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCloseAllOpenUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CloseAllOpenUseCase {
	return &CloseAllOpenUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CloseAllOpenUseCase) Execute(ctx context.Context, cmd CloseAllOpenCommand) (*CloseAllOpenResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can bulk close tickets")
	}

	closed, err := uc.ticketRepo.CloseAllOpen(ctx)
	if err != nil {
		uc.logger.Errorw("failed to bulk close tickets", "error", err)
		return nil, err
	}

	uc.logger.Infow("bulk closed tickets", "closed_count", closed, "user_id", cmd.Actor.UserID)

	return &CloseAllOpenResult{ClosedCount: closed}, nil
}
