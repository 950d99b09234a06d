package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type UpdateOrderCommand struct {
	Actor   authorization.Actor
	OrderID uint
	Update  authorization.OrderUpdate
}

type UpdateOrderResult struct {
	OrderID        uint     `json:"order_id"`
	StrippedFields []string `json:"stripped_fields"`
}

// UpdateOrderUseCase applies a projected update: the authorization layer
// strips the fields the actor's role may not set, and the request succeeds
// with whatever survived the projection.
type UpdateOrderUseCase struct {
	orderRepo order.Repository
	policy    *authorization.ResourcePolicy
	logger    logger.Interface
}

func NewUpdateOrderUseCase(
	orderRepo order.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orderRepo: orderRepo,
		policy:    policy,
		logger:    logger,
	}
}

func (uc *UpdateOrderUseCase) Execute(ctx context.Context, cmd UpdateOrderCommand) (*UpdateOrderResult, error) {
	o, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	allowed, err := uc.policy.CanAccessOwned(ctx, cmd.Actor, o.UserID())
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewForbiddenError("you do not have access to this order")
	}

	update, stripped := authorization.ProjectOrderUpdate(cmd.Actor, cmd.Update)
	if len(stripped) > 0 {
		uc.logger.Infow("stripped restricted order fields",
			"order_id", cmd.OrderID, "user_id", cmd.Actor.UserID, "fields", stripped)
	}

	o.UpdateDetails(update.AnchorText, update.TargetURL, update.ContentTitle, update.ContentBody, update.Notes)

	if update.Status != nil {
		if err := o.ChangeStatus(order.Status(*update.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if update.AssignedTo != nil {
		if err := o.Assign(*update.AssignedTo); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if update.DateCompleted != nil {
		o.SetDateCompleted(update.DateCompleted)
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to update order", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	return &UpdateOrderResult{
		OrderID:        o.ID(),
		StrippedFields: stripped,
	}, nil
}
