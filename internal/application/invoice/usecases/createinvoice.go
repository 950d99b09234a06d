package usecases

import (
	"context"
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type CreateInvoiceCommand struct {
	Actor       authorization.Actor
	UserID      uint
	AmountCents int64
	DueDate     time.Time
	Notes       string
}

type CreateInvoiceResult struct {
	InvoiceID uint   `json:"invoice_id"`
	Number    string `json:"number"`
}

// CreateInvoiceUseCase bills a customer. Numbers come from the
// repository's sequence so they stay gapless per year.
type CreateInvoiceUseCase struct {
	invoiceRepo invoice.Repository
	userRepo    user.Repository
	outboxRepo  outbox.Repository
	logger      logger.Interface
}

func NewCreateInvoiceUseCase(
	invoiceRepo invoice.Repository,
	userRepo user.Repository,
	outboxRepo outbox.Repository,
	logger logger.Interface,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		logger:      logger,
	}
}

func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, cmd CreateInvoiceCommand) (*CreateInvoiceResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can create invoices")
	}

	billed, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	number, err := uc.invoiceRepo.NextNumber(ctx)
	if err != nil {
		uc.logger.Errorw("failed to allocate invoice number", "error", err)
		return nil, err
	}

	inv, err := invoice.NewInvoice(billed.ID(), billed.OrganizationID(), number, cmd.AmountCents, cmd.DueDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Notes != "" {
		inv.SetNotes(cmd.Notes)
	}

	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		uc.logger.Errorw("failed to create invoice", "number", number, "error", err)
		return nil, err
	}

	enqueueEvent(ctx, uc.outboxRepo, uc.logger, outbox.TopicInvoiceCreated, outbox.InvoiceEventPayload{
		InvoiceID:   inv.ID(),
		Number:      inv.Number(),
		AmountCents: inv.AmountCents(),
		Recipients:  []outbox.Recipient{recipientFor(billed)},
	})

	uc.logger.Infow("invoice created",
		"invoice_id", inv.ID(), "number", inv.Number(),
		"user_id", billed.ID(), "amount_cents", inv.AmountCents())

	return &CreateInvoiceResult{InvoiceID: inv.ID(), Number: inv.Number()}, nil
}
