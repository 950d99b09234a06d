package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type MarkInvoicePaidCommand struct {
	Actor     authorization.Actor
	InvoiceID uint
}

type MarkInvoicePaidResult struct {
	InvoiceID uint   `json:"invoice_id"`
	Status    string `json:"status"`
}

type MarkInvoicePaidUseCase struct {
	invoiceRepo invoice.Repository
	userRepo    user.Repository
	outboxRepo  outbox.Repository
	logger      logger.Interface
}

func NewMarkInvoicePaidUseCase(
	invoiceRepo invoice.Repository,
	userRepo user.Repository,
	outboxRepo outbox.Repository,
	logger logger.Interface,
) *MarkInvoicePaidUseCase {
	return &MarkInvoicePaidUseCase{
		invoiceRepo: invoiceRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		logger:      logger,
	}
}

func (uc *MarkInvoicePaidUseCase) Execute(ctx context.Context, cmd MarkInvoicePaidCommand) (*MarkInvoicePaidResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can mark invoices paid")
	}

	inv, err := uc.invoiceRepo.FindByID(ctx, cmd.InvoiceID)
	if err != nil {
		return nil, err
	}

	if err := inv.MarkPaid(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		uc.logger.Errorw("failed to mark invoice paid", "invoice_id", cmd.InvoiceID, "error", err)
		return nil, err
	}

	payload := outbox.InvoiceEventPayload{
		InvoiceID:   inv.ID(),
		Number:      inv.Number(),
		AmountCents: inv.AmountCents(),
	}
	if owner, err := uc.userRepo.FindByID(ctx, inv.UserID()); err != nil {
		uc.logger.Warnw("failed to resolve invoice owner for notification",
			"invoice_id", inv.ID(), "user_id", inv.UserID(), "error", err)
	} else {
		payload.Recipients = []outbox.Recipient{recipientFor(owner)}
	}
	enqueueEvent(ctx, uc.outboxRepo, uc.logger, outbox.TopicInvoicePaid, payload)

	uc.logger.Infow("invoice marked paid",
		"invoice_id", inv.ID(), "number", inv.Number(), "actor_id", cmd.Actor.UserID)

	return &MarkInvoicePaidResult{InvoiceID: inv.ID(), Status: string(inv.Status())}, nil
}
