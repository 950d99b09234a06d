package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/order/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ListCommentsQuery struct {
	Actor   authorization.Actor
	OrderID uint
}

type ListCommentsUseCase struct {
	orderRepo   order.Repository
	commentRepo order.CommentRepository
	policy      *authorization.ResourcePolicy
	logger      logger.Interface
}

func NewListCommentsUseCase(
	orderRepo order.Repository,
	commentRepo order.CommentRepository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		orderRepo:   orderRepo,
		commentRepo: commentRepo,
		policy:      policy,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	o, err := uc.orderRepo.FindByID(ctx, query.OrderID)
	if err != nil {
		return nil, err
	}

	allowed, err := uc.policy.CanAccessOwned(ctx, query.Actor, o.UserID())
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewForbiddenError("you do not have access to this order")
	}

	comments, err := uc.commentRepo.ListByOrder(ctx, query.OrderID)
	if err != nil {
		return nil, err
	}

	return dto.ToCommentDTOs(comments, query.Actor.UserID), nil
}
