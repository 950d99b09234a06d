package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/integrations"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type GenerateCopyCommand struct {
	Actor   authorization.Actor
	OrderID uint
	// Title overrides the order's content title for this draft.
	Title string
	Notes string
}

type GenerateCopyResult struct {
	OrderID uint   `json:"order_id"`
	Draft   string `json:"draft"`
}

// GenerateCopyUseCase drafts guest post copy for an order. Staff only;
// customers get the draft via the order thread once an admin has reviewed
// it.
type GenerateCopyUseCase struct {
	orderRepo order.Repository
	generator integrations.CopyGenerator
	logger    logger.Interface
}

func NewGenerateCopyUseCase(
	orderRepo order.Repository,
	generator integrations.CopyGenerator,
	logger logger.Interface,
) *GenerateCopyUseCase {
	return &GenerateCopyUseCase{
		orderRepo: orderRepo,
		generator: generator,
		logger:    logger,
	}
}

func (uc *GenerateCopyUseCase) Execute(ctx context.Context, cmd GenerateCopyCommand) (*GenerateCopyResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can generate drafts")
	}
	if uc.generator == nil || !uc.generator.Enabled() {
		return nil, errors.NewConflictError("content generation is not configured")
	}

	o, err := uc.orderRepo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	if o.Type() != order.TypeGuestPost {
		return nil, errors.NewValidationError("drafts can only be generated for guest post orders")
	}

	brief := integrations.CopyBrief{
		AnchorText: o.AnchorText(),
		TargetURL:  o.TargetURL(),
		Title:      o.ContentTitle(),
		Notes:      o.Notes(),
	}
	if cmd.Title != "" {
		brief.Title = cmd.Title
	}
	if cmd.Notes != "" {
		brief.Notes = cmd.Notes
	}

	draft, err := uc.generator.GenerateDraft(ctx, brief)
	if err != nil {
		uc.logger.Errorw("failed to generate draft", "order_id", cmd.OrderID, "error", err)
		return nil, errors.NewInternalError("failed to generate draft")
	}

	uc.logger.Infow("draft generated", "order_id", cmd.OrderID, "actor_id", cmd.Actor.UserID)

	return &GenerateCopyResult{OrderID: o.ID(), Draft: draft}, nil
}
