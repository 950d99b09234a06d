package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type CancelInvoiceCommand struct {
	Actor     authorization.Actor
	InvoiceID uint
}

type CancelInvoiceUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewCancelInvoiceUseCase(invoiceRepo invoice.Repository, logger logger.Interface) *CancelInvoiceUseCase {
	return &CancelInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (uc *CancelInvoiceUseCase) Execute(ctx context.Context, cmd CancelInvoiceCommand) error {
	if !cmd.Actor.Role.IsAdmin() {
		return errors.NewForbiddenError("only admins can cancel invoices")
	}

	inv, err := uc.invoiceRepo.FindByID(ctx, cmd.InvoiceID)
	if err != nil {
		return err
	}

	if err := inv.Cancel(); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		uc.logger.Errorw("failed to cancel invoice", "invoice_id", cmd.InvoiceID, "error", err)
		return err
	}

	uc.logger.Infow("invoice cancelled",
		"invoice_id", inv.ID(), "number", inv.Number(), "actor_id", cmd.Actor.UserID)
	return nil
}
