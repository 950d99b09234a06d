package usecases

import (
	"context"
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

const overdueSweepBatchSize = 100

// OverdueSweepUseCase flips pending invoices past their due date to
// overdue. It runs from the scheduler; one bad row never stops the
// sweep.
type OverdueSweepUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewOverdueSweepUseCase(invoiceRepo invoice.Repository, logger logger.Interface) *OverdueSweepUseCase {
	return &OverdueSweepUseCase{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

// MarkOverdueInvoices returns how many invoices were flipped.
func (uc *OverdueSweepUseCase) MarkOverdueInvoices(ctx context.Context) (int, error) {
	due, err := uc.invoiceRepo.ListDuePending(ctx, overdueSweepBatchSize)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	marked := 0
	for _, inv := range due {
		if err := inv.MarkOverdue(now); err != nil {
			uc.logger.Warnw("skipping invoice in overdue sweep",
				"invoice_id", inv.ID(), "error", err)
			continue
		}
		if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
			uc.logger.Errorw("failed to mark invoice overdue",
				"invoice_id", inv.ID(), "error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		uc.logger.Infow("invoices marked overdue", "count", marked)
	}
	return marked, nil
}
