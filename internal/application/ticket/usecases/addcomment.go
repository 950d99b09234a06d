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

type AddCommentCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Content  string
}

type AddCommentResult struct {
	CommentID uint      `json:"comment_id"`
	Reopened  bool      `json:"reopened"`
	CreatedAt time.Time `json:"created_at"`
}

type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	outboxRepo  outbox.Repository
	policy      *authorization.ResourcePolicy
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	outboxRepo outbox.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		policy:      policy,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
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

	author, err := uc.userRepo.FindByID(ctx, cmd.Actor.UserID)
	if err != nil {
		return nil, err
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Actor.UserID, cmd.Content, cmd.Actor.Role.IsAdmin())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to create ticket comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	// Any reply to a closed ticket puts it back into the open queue.
	reopened := false
	if tk.IsClosed() {
		tk.Reopen()
		if err := uc.ticketRepo.Update(ctx, tk); err != nil {
			uc.logger.Errorw("failed to reopen ticket", "ticket_id", tk.ID(), "error", err)
			return nil, err
		}
		reopened = true
		uc.logger.Infow("ticket reopened by comment", "ticket_id", tk.ID(), "user_id", cmd.Actor.UserID)
	}

	uc.enqueueCommentAdded(ctx, tk, author)

	return &AddCommentResult{
		CommentID: comment.ID(),
		Reopened:  reopened,
		CreatedAt: comment.CreatedAt(),
	}, nil
}

// enqueueCommentAdded notifies the other side of the thread: staff replies
// go to the ticket owner, customer replies go to the admins.
func (uc *AddCommentUseCase) enqueueCommentAdded(ctx context.Context, tk *ticket.Ticket, author *user.User) {
	var recipients []outbox.Recipient
	if author.ID() == tk.UserID() {
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

	enqueueEvent(ctx, uc.outboxRepo, uc.logger, outbox.TopicTicketCommentAdded, outbox.TicketEventPayload{
		TicketID:   tk.ID(),
		Subject:    tk.Subject(),
		Author:     author.Name(),
		Recipients: recipients,
	})
}
