package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/invoice/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type GetInvoiceQuery struct {
	Actor     authorization.Actor
	InvoiceID uint
}

type GetInvoiceUseCase struct {
	invoiceRepo invoice.Repository
	policy      *authorization.ResourcePolicy
	logger      logger.Interface
}

func NewGetInvoiceUseCase(
	invoiceRepo invoice.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		policy:      policy,
		logger:      logger,
	}
}

func (uc *GetInvoiceUseCase) Execute(ctx context.Context, query GetInvoiceQuery) (*dto.InvoiceDTO, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, query.InvoiceID)
	if err != nil {
		return nil, err
	}

	allowed, err := uc.policy.CanAccessOwned(ctx, query.Actor, inv.UserID())
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewForbiddenError("you do not have access to this invoice")
	}

	return dto.ToInvoiceDTO(inv), nil
}
