package usecases

import (
	"context"
	"fmt"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Actor   authorization.Actor
	OrderID uint
	Status  string
}

type ChangeStatusResult struct {
	OrderID   uint   `json:"order_id"`
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
}

type ChangeStatusUseCase struct {
	orderRepo   order.Repository
	commentRepo order.CommentRepository
	userRepo    user.Repository
	outboxRepo  outbox.Repository
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	orderRepo order.Repository,
	commentRepo order.CommentRepository,
	userRepo user.Repository,
	outboxRepo outbox.Repository,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		orderRepo:   orderRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change order status use case",
		"order_id", cmd.OrderID, "status", cmd.Status, "user_id", cmd.Actor.UserID)

	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can change order status")
	}

	o, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if err := o.ChangeStatus(order.Status(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to update order status", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	uc.recordSystemComment(ctx, o, cmd.Actor.UserID)
	uc.enqueueStatusChanged(ctx, o)

	return &ChangeStatusResult{
		OrderID:   o.ID(),
		Status:    string(o.Status()),
		Completed: o.Status().IsCompleted(),
	}, nil
}

func (uc *ChangeStatusUseCase) recordSystemComment(ctx context.Context, o *order.Order, actorID uint) {
	content := fmt.Sprintf("Status changed to %s", o.Status())
	comment, err := order.NewSystemComment(o.ID(), actorID, content)
	if err != nil {
		uc.logger.Warnw("failed to build system comment", "order_id", o.ID(), "error", err)
		return
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Warnw("failed to record system comment", "order_id", o.ID(), "error", err)
	}
}

func (uc *ChangeStatusUseCase) enqueueStatusChanged(ctx context.Context, o *order.Order) {
	owner, err := uc.userRepo.FindByID(ctx, o.UserID())
	if err != nil {
		uc.logger.Warnw("failed to resolve order owner", "order_id", o.ID(), "error", err)
		return
	}

	enqueueEvent(ctx, uc.outboxRepo, uc.logger, outbox.TopicOrderStatusChanged, outbox.OrderEventPayload{
		OrderID:    o.ID(),
		Reference:  orderRef(o.ID()),
		OrderType:  string(o.Type()),
		Status:     string(o.Status()),
		Recipients: []outbox.Recipient{recipientFor(owner)},
	})
}
