package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/invoice/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ListInvoicesQuery struct {
	Actor          authorization.Actor
	UserID         uint
	OrganizationID uint
	Status         string
	Offset         int
	Limit          int
}

type ListInvoicesResult struct {
	Invoices []*dto.InvoiceDTO `json:"invoices"`
	Total    int64             `json:"total"`
}

type ListInvoicesUseCase struct {
	invoiceRepo    invoice.Repository
	assignmentRepo user.AssignmentRepository
	logger         logger.Interface
}

func NewListInvoicesUseCase(
	invoiceRepo invoice.Repository,
	assignmentRepo user.AssignmentRepository,
	logger logger.Interface,
) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceRepo:    invoiceRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListInvoicesUseCase) Execute(ctx context.Context, query ListInvoicesQuery) (*ListInvoicesResult, error) {
	filter := invoice.ListFilter{
		UserID:         query.UserID,
		OrganizationID: query.OrganizationID,
		Status:         invoice.Status(query.Status),
	}

	filter, err := scopeFilter(ctx, query.Actor, uc.assignmentRepo, filter)
	if err != nil {
		return nil, err
	}

	invoices, total, err := uc.invoiceRepo.List(ctx, filter, query.Offset, query.Limit)
	if err != nil {
		return nil, err
	}

	return &ListInvoicesResult{
		Invoices: dto.ToInvoiceDTOs(invoices),
		Total:    total,
	}, nil
}
