package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/mapper"
)

type OutboxMapper interface {
	ToEntity(model *models.OutboxMessageModel) (*outbox.Message, error)
	ToModel(entity *outbox.Message) (*models.OutboxMessageModel, error)
	ToEntities(models []*models.OutboxMessageModel) ([]*outbox.Message, error)
}

type OutboxMapperImpl struct{}

func NewOutboxMapper() OutboxMapper {
	return &OutboxMapperImpl{}
}

func (m *OutboxMapperImpl) ToEntity(model *models.OutboxMessageModel) (*outbox.Message, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := outbox.ReconstructMessage(
		model.ID,
		model.Topic,
		model.Payload,
		outbox.Status(model.Status),
		model.Attempts,
		model.LastError,
		model.AvailableAt,
		model.ProcessedAt,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct outbox message: %w", err)
	}
	return entity, nil
}

func (m *OutboxMapperImpl) ToModel(entity *outbox.Message) (*models.OutboxMessageModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.OutboxMessageModel{
		ID:          entity.ID(),
		Topic:       entity.Topic(),
		Payload:     datatypes.JSON(entity.Payload()),
		Status:      string(entity.Status()),
		Attempts:    entity.Attempts(),
		LastError:   entity.LastError(),
		AvailableAt: entity.AvailableAt(),
		ProcessedAt: entity.ProcessedAt(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *OutboxMapperImpl) ToEntities(modelList []*models.OutboxMessageModel) ([]*outbox.Message, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.OutboxMessageModel) uint { return model.ID })
}
