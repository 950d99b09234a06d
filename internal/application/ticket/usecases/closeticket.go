package usecases

import (
	"context"
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/ticket"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type CloseTicketCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Rating   *int
}

type CloseTicketResult struct {
	TicketID uint      `json:"ticket_id"`
	Status   string    `json:"status"`
	ClosedAt time.Time `json:"closed_at"`
}

type CloseTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	outboxRepo outbox.Repository
	policy     *authorization.ResourcePolicy
	logger     logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	outboxRepo outbox.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		outboxRepo: outboxRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	tk, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	allowed, err := uc.policy.CanAccessOwned(ctx, cmd.Actor, tk.UserID())
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	if err := tk.Close(cmd.Rating); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, tk); err != nil {
		uc.logger.Errorw("failed to close ticket", "ticket_id", tk.ID(), "error", err)
		return nil, err
	}

	uc.enqueueClosed(ctx, tk, cmd.Actor.UserID)

	uc.logger.Infow("ticket closed",
		"ticket_id", tk.ID(), "user_id", cmd.Actor.UserID, "rated", cmd.Rating != nil)

	return &CloseTicketResult{
		TicketID: tk.ID(),
		Status:   string(tk.Status()),
		ClosedAt: *tk.ClosedAt(),
	}, nil
}

func (uc *CloseTicketUseCase) enqueueClosed(ctx context.Context, tk *ticket.Ticket, closerID uint) {
	var recipients []outbox.Recipient
	if closerID == tk.UserID() {
		admins, err := adminRecipients(ctx, uc.userRepo)
		if err != nil {
			uc.logger.Warnw("failed to resolve admin recipients", "error", err)
			return
		}
		recipients = admins
	} else {
		owner, err := uc.userRepo.FindByID(ctx, tk.UserID())
		if err != nil {
			uc.logger.Warnw("failed to resolve ticket owner", "ticket_id", tk.ID(), "error", err)
			return
		}
		recipients = []outbox.Recipient{recipientFor(owner)}
	}

	enqueueEvent(ctx, uc.outboxRepo, uc.logger, outbox.TopicTicketClosed, outbox.TicketEventPayload{
		TicketID:   tk.ID(),
		Subject:    tk.Subject(),
		Recipients: recipients,
	})
}
