package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/ticket"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	Actor      authorization.Actor
	TicketID   uint
	Status     *string
	Priority   *string
	AssignedTo *uint
}

type UpdateTicketResult struct {
	TicketID uint   `json:"ticket_id"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

// UpdateTicketUseCase applies the staff-side workflow fields. Only admins
// may move a ticket through the queue; customers interact through comments
// and the close action instead.
type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can update tickets")
	}

	tk, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if cmd.Status != nil {
		if err := tk.ChangeStatus(ticket.Status(*cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != nil {
		if err := tk.ChangePriority(ticket.Priority(*cmd.Priority)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.AssignedTo != nil {
		if err := tk.Assign(*cmd.AssignedTo); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, tk); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", tk.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", tk.ID(), "user_id", cmd.Actor.UserID)

	return &UpdateTicketResult{
		TicketID: tk.ID(),
		Status:   string(tk.Status()),
		Priority: string(tk.Priority()),
	}, nil
}
