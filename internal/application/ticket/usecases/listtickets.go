package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/ticket/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/ticket"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Actor      authorization.Actor
	Status     string
	UserID     uint
	AssignedTo uint
	Offset     int
	Limit      int
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO `json:"tickets"`
	Total   int64            `json:"total"`
}

type ListTicketsUseCase struct {
	ticketRepo     ticket.Repository
	assignmentRepo user.AssignmentRepository
	logger         logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	assignmentRepo user.AssignmentRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:     ticketRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.ListFilter{
		Status:     ticket.Status(query.Status),
		UserID:     query.UserID,
		AssignedTo: query.AssignedTo,
	}

	filter, err := scopeFilter(ctx, query.Actor, uc.assignmentRepo, filter)
	if err != nil {
		uc.logger.Errorw("failed to scope ticket filter", "error", err)
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter, query.Offset, query.Limit)
	if err != nil {
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketDTOs(tickets),
		Total:   total,
	}, nil
}
