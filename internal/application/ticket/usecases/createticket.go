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

type CreateTicketCommand struct {
	Actor    authorization.Actor
	Subject  string
	Priority string
	Message  string
}

type CreateTicketResult struct {
	TicketID  uint      `json:"ticket_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	outboxRepo  outbox.Repository
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	outboxRepo outbox.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"user_id", cmd.Actor.UserID, "priority", cmd.Priority)

	priority := ticket.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = ticket.PriorityNormal
	}

	tk, err := ticket.NewTicket(cmd.Actor.UserID, cmd.Subject, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, tk); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	// The opening message becomes the first comment of the thread.
	if cmd.Message != "" {
		comment, err := ticket.NewComment(tk.ID(), cmd.Actor.UserID, cmd.Message, false)
		if err == nil {
			err = uc.commentRepo.Create(ctx, comment)
		}
		if err != nil {
			uc.logger.Warnw("failed to record opening message", "ticket_id", tk.ID(), "error", err)
		}
	}

	uc.enqueueCreated(ctx, tk)

	uc.logger.Infow("ticket created", "ticket_id", tk.ID(), "user_id", cmd.Actor.UserID)

	return &CreateTicketResult{
		TicketID:  tk.ID(),
		Status:    string(tk.Status()),
		CreatedAt: tk.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) enqueueCreated(ctx context.Context, tk *ticket.Ticket) {
	recipients, err := adminRecipients(ctx, uc.userRepo)
	if err != nil {
		uc.logger.Warnw("failed to resolve admin recipients", "error", err)
		return
	}

	author, err := uc.userRepo.FindByID(ctx, tk.UserID())
	if err != nil {
		uc.logger.Warnw("failed to resolve ticket author", "ticket_id", tk.ID(), "error", err)
		return
	}

	enqueueEvent(ctx, uc.outboxRepo, uc.logger, outbox.TopicTicketCreated, outbox.TicketEventPayload{
		TicketID:   tk.ID(),
		Subject:    tk.Subject(),
		Author:     author.Name(),
		Recipients: recipients,
	})
}
