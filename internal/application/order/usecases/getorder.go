package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/order/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type GetOrderQuery struct {
	Actor   authorization.Actor
	OrderID uint
}

type GetOrderUseCase struct {
	orderRepo order.Repository
	policy    *authorization.ResourcePolicy
	logger    logger.Interface
}

func NewGetOrderUseCase(
	orderRepo order.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
		policy:    policy,
		logger:    logger,
	}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, query GetOrderQuery) (*dto.OrderDTO, error) {
	o, err := uc.orderRepo.FindByID(ctx, query.OrderID)
	if err != nil {
		return nil, err
	}

	allowed, err := uc.policy.CanAccessOwned(ctx, query.Actor, o.UserID())
	if err != nil {
		return nil, err
	}
	if !allowed {
		uc.logger.Warnw("order access denied",
			"order_id", query.OrderID, "user_id", query.Actor.UserID)
		return nil, errors.NewForbiddenError("you do not have access to this order")
	}

	return dto.ToOrderDTO(o), nil
}
