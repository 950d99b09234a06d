package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type AssignOrderCommand struct {
	Actor      authorization.Actor
	OrderID    uint
	AssigneeID uint
}

type AssignOrderUseCase struct {
	orderRepo  order.Repository
	userRepo   user.Repository
	outboxRepo outbox.Repository
	logger     logger.Interface
}

func NewAssignOrderUseCase(
	orderRepo order.Repository,
	userRepo user.Repository,
	outboxRepo outbox.Repository,
	logger logger.Interface,
) *AssignOrderUseCase {
	return &AssignOrderUseCase{
		orderRepo:  orderRepo,
		userRepo:   userRepo,
		outboxRepo: outboxRepo,
		logger:     logger,
	}
}

func (uc *AssignOrderUseCase) Execute(ctx context.Context, cmd AssignOrderCommand) error {
	if !cmd.Actor.Role.IsAdmin() {
		return errors.NewForbiddenError("only admins can assign orders")
	}

	o, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return err
	}

	assignee, err := uc.userRepo.FindByID(ctx, cmd.AssigneeID)
	if err != nil {
		return err
	}

	if err := o.Assign(assignee.ID()); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to assign order", "order_id", cmd.OrderID, "error", err)
		return err
	}

	enqueueEvent(ctx, uc.outboxRepo, uc.logger, outbox.TopicOrderAssigned, outbox.OrderEventPayload{
		OrderID:    o.ID(),
		Reference:  orderRef(o.ID()),
		OrderType:  string(o.Type()),
		Recipients: []outbox.Recipient{recipientFor(assignee)},
	})

	uc.logger.Infow("order assigned", "order_id", o.ID(), "assignee_id", assignee.ID())
	return nil
}
