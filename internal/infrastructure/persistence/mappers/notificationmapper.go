package mappers

import (
	"fmt"

	"github.com/linkdesk-io/linkdesk/internal/domain/notification"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/mapper"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
	ToModels(entities []*notification.Notification) ([]*models.NotificationModel, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := notification.ReconstructNotification(
		model.ID,
		model.UserID,
		notification.Kind(model.Kind),
		model.Title,
		model.Body,
		model.ResourceType,
		model.ResourceID,
		model.ReadFlag,
		model.ReadAt,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}
	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.NotificationModel{
		ID:           entity.ID(),
		UserID:       entity.UserID(),
		Kind:         string(entity.Kind()),
		Title:        entity.Title(),
		Body:         entity.Body(),
		ResourceType: entity.ResourceType(),
		ResourceID:   entity.ResourceID(),
		ReadFlag:     entity.IsRead(),
		ReadAt:       entity.ReadAt(),
		CreatedAt:    entity.CreatedAt(),
	}, nil
}

func (m *NotificationMapperImpl) ToEntities(modelList []*models.NotificationModel) ([]*notification.Notification, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.NotificationModel) uint { return model.ID })
}

func (m *NotificationMapperImpl) ToModels(entities []*notification.Notification) ([]*models.NotificationModel, error) {
	return mapper.MapSlicePtrWithID(entities, m.ToModel, func(entity *notification.Notification) uint { return entity.ID() })
}
