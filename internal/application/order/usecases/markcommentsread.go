package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type MarkCommentsReadCommand struct {
	Actor   authorization.Actor
	OrderID uint
}

type MarkCommentsReadResult struct {
	MarkedCount int `json:"marked_count"`
}

// MarkCommentsReadUseCase stamps the actor onto the read-receipt list of
// every comment on the thread they have not seen yet.
type MarkCommentsReadUseCase struct {
	orderRepo   order.Repository
	commentRepo order.CommentRepository
	policy      *authorization.ResourcePolicy
	logger      logger.Interface
}

func NewMarkCommentsReadUseCase(
	orderRepo order.Repository,
	commentRepo order.CommentRepository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *MarkCommentsReadUseCase {
	return &MarkCommentsReadUseCase{
		orderRepo:   orderRepo,
		commentRepo: commentRepo,
		policy:      policy,
		logger:      logger,
	}
}

func (uc *MarkCommentsReadUseCase) Execute(ctx context.Context, cmd MarkCommentsReadCommand) (*MarkCommentsReadResult, error) {
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

	comments, err := uc.commentRepo.ListByOrder(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	marked := 0
	for _, c := range comments {
		if !c.MarkReadBy(cmd.Actor.UserID) {
			continue
		}
		if err := uc.commentRepo.Update(ctx, c); err != nil {
			uc.logger.Errorw("failed to persist read receipt",
				"comment_id", c.ID(), "user_id", cmd.Actor.UserID, "error", err)
			return nil, err
		}
		marked++
	}

	return &MarkCommentsReadResult{MarkedCount: marked}, nil
}
