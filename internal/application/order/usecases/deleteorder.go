package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type DeleteOrderCommand struct {
	Actor   authorization.Actor
	OrderID uint
}

type DeleteOrderUseCase struct {
	orderRepo order.Repository
	policy    *authorization.ResourcePolicy
	logger    logger.Interface
}

func NewDeleteOrderUseCase(
	orderRepo order.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
		policy:    policy,
		logger:    logger,
	}
}

func (uc *DeleteOrderUseCase) Execute(ctx context.Context, cmd DeleteOrderCommand) error {
	if !uc.policy.CanDelete(cmd.Actor) {
		return errors.NewForbiddenError("only admins can delete orders")
	}

	if err := uc.orderRepo.Delete(ctx, cmd.OrderID); err != nil {
		uc.logger.Errorw("failed to delete order", "order_id", cmd.OrderID, "error", err)
		return err
	}

	uc.logger.Infow("order deleted", "order_id", cmd.OrderID, "user_id", cmd.Actor.UserID)
	return nil
}
