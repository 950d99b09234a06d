package mappers

import (
	"fmt"

	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/mapper"
)

type InvoiceMapper interface {
	ToEntity(model *models.InvoiceModel) (*invoice.Invoice, error)
	ToModel(entity *invoice.Invoice) (*models.InvoiceModel, error)
	ToEntities(models []*models.InvoiceModel) ([]*invoice.Invoice, error)
}

type InvoiceMapperImpl struct{}

func NewInvoiceMapper() InvoiceMapper {
	return &InvoiceMapperImpl{}
}

func (m *InvoiceMapperImpl) ToEntity(model *models.InvoiceModel) (*invoice.Invoice, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := invoice.ReconstructInvoice(
		model.ID,
		model.UserID,
		model.OrganizationID,
		model.Number,
		model.AmountCents,
		model.Currency,
		invoice.Status(model.Status),
		model.DueDate,
		model.PaidAt,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct invoice entity: %w", err)
	}
	return entity, nil
}

func (m *InvoiceMapperImpl) ToModel(entity *invoice.Invoice) (*models.InvoiceModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.InvoiceModel{
		ID:             entity.ID(),
		UserID:         entity.UserID(),
		OrganizationID: entity.OrganizationID(),
		Number:         entity.Number(),
		AmountCents:    entity.AmountCents(),
		Currency:       entity.Currency(),
		Status:         entity.Status().String(),
		DueDate:        entity.DueDate(),
		PaidAt:         entity.PaidAt(),
		Notes:          entity.Notes(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *InvoiceMapperImpl) ToEntities(modelList []*models.InvoiceModel) ([]*invoice.Invoice, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.InvoiceModel) uint { return model.ID })
}
