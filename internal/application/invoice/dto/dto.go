package dto

import (
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
)

type InvoiceDTO struct {
	ID             uint       `json:"id"`
	UserID         uint       `json:"user_id"`
	OrganizationID uint       `json:"organization_id"`
	Number         string     `json:"number"`
	AmountCents    int64      `json:"amount_cents"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	DueDate        time.Time  `json:"due_date"`
	PaidAt         *time.Time `json:"paid_at"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ToInvoiceDTO(i *invoice.Invoice) *InvoiceDTO {
	if i == nil {
		return nil
	}
	return &InvoiceDTO{
		ID:             i.ID(),
		UserID:         i.UserID(),
		OrganizationID: i.OrganizationID(),
		Number:         i.Number(),
		AmountCents:    i.AmountCents(),
		Currency:       i.Currency(),
		Status:         string(i.Status()),
		DueDate:        i.DueDate(),
		PaidAt:         i.PaidAt(),
		Notes:          i.Notes(),
		CreatedAt:      i.CreatedAt(),
		UpdatedAt:      i.UpdatedAt(),
	}
}

func ToInvoiceDTOs(invoices []*invoice.Invoice) []*InvoiceDTO {
	result := make([]*InvoiceDTO, 0, len(invoices))
	for _, i := range invoices {
		result = append(result, ToInvoiceDTO(i))
	}
	return result
}
