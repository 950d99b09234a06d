package usecases

import (
	"context"
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor   authorization.Actor
	OrderID uint
	Content string
}

type AddCommentResult struct {
	CommentID uint      `json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

type AddCommentUseCase struct {
	orderRepo   order.Repository
	commentRepo order.CommentRepository
	userRepo    user.Repository
	outboxRepo  outbox.Repository
	policy      *authorization.ResourcePolicy
	logger      logger.Interface
}

func NewAddCommentUseCase(
	orderRepo order.Repository,
	commentRepo order.CommentRepository,
	userRepo user.Repository,
	outboxRepo outbox.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		orderRepo:   orderRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		policy:      policy,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
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

	author, err := uc.userRepo.FindByID(ctx, cmd.Actor.UserID)
	if err != nil {
		return nil, err
	}

	comment, err := order.NewComment(cmd.OrderID, cmd.Actor.UserID, cmd.Content, cmd.Actor.Role.IsAdmin())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to create order comment", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	uc.enqueueCommentAdded(ctx, o, author)

	uc.logger.Infow("order comment added",
		"comment_id", comment.ID(), "order_id", cmd.OrderID, "user_id", cmd.Actor.UserID)

	return &AddCommentResult{
		CommentID: comment.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}

// enqueueCommentAdded notifies the other side of the thread: staff comments
// go to the order owner, customer comments go to the admins.
func (uc *AddCommentUseCase) enqueueCommentAdded(ctx context.Context, o *order.Order, author *user.User) {
	var recipients []outbox.Recipient
	if author.ID() == o.UserID() {
		admins, err := adminRecipients(ctx, uc.userRepo)
		if err != nil {
			uc.logger.Warnw("failed to resolve admin recipients", "error", err)
			return
		}
		recipients = admins
	} else {
		owner, err := uc.userRepo.FindByID(ctx, o.UserID())
		if err != nil {
			uc.logger.Warnw("failed to resolve order owner", "order_id", o.ID(), "error", err)
			return
		}
		recipients = []outbox.Recipient{recipientFor(owner)}
	}

	enqueueEvent(ctx, uc.outboxRepo, uc.logger, outbox.TopicOrderCommentAdded, outbox.OrderEventPayload{
		OrderID:    o.ID(),
		Reference:  orderRef(o.ID()),
		OrderType:  string(o.Type()),
		Author:     author.Name(),
		Recipients: recipients,
	})
}
