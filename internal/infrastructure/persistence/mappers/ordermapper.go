package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/mapper"
)

type OrderMapper interface {
	ToEntity(model *models.OrderModel) (*order.Order, error)
	ToModel(entity *order.Order) (*models.OrderModel, error)
	ToEntities(models []*models.OrderModel) ([]*order.Order, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToEntity(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := order.ReconstructOrder(
		model.ID,
		model.UserID,
		model.OrganizationID,
		model.DomainID,
		order.OrderType(model.OrderType),
		order.Status(model.Status),
		model.AnchorText,
		model.TargetURL,
		model.ContentTitle,
		model.ContentBody,
		model.Notes,
		model.PriceCents,
		model.AssignedTo,
		model.DateOrdered,
		model.DateCompleted,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order entity: %w", err)
	}
	return entity, nil
}

func (m *OrderMapperImpl) ToModel(entity *order.Order) (*models.OrderModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.OrderModel{
		ID:             entity.ID(),
		UserID:         entity.UserID(),
		OrganizationID: entity.OrganizationID(),
		DomainID:       entity.DomainID(),
		OrderType:      entity.Type().String(),
		Status:         entity.Status().String(),
		AnchorText:     entity.AnchorText(),
		TargetURL:      entity.TargetURL(),
		ContentTitle:   entity.ContentTitle(),
		ContentBody:    entity.ContentBody(),
		Notes:          entity.Notes(),
		PriceCents:     entity.PriceCents(),
		AssignedTo:     entity.AssignedTo(),
		DateOrdered:    entity.DateOrdered(),
		DateCompleted:  entity.DateCompleted(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *OrderMapperImpl) ToEntities(modelList []*models.OrderModel) ([]*order.Order, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.OrderModel) uint { return model.ID })
}

type OrderCommentMapper interface {
	ToEntity(model *models.OrderCommentModel) (*order.Comment, error)
	ToModel(entity *order.Comment) (*models.OrderCommentModel, error)
	ToEntities(models []*models.OrderCommentModel) ([]*order.Comment, error)
}

type OrderCommentMapperImpl struct{}

func NewOrderCommentMapper() OrderCommentMapper {
	return &OrderCommentMapperImpl{}
}

func (m *OrderCommentMapperImpl) ToEntity(model *models.OrderCommentModel) (*order.Comment, error) {
	if model == nil {
		return nil, nil
	}

	var readBy []uint
	if len(model.ReadBy) > 0 {
		if err := json.Unmarshal(model.ReadBy, &readBy); err != nil {
			return nil, fmt.Errorf("failed to decode read receipts: %w", err)
		}
	}

	entity, err := order.ReconstructComment(
		model.ID,
		model.OrderID,
		model.UserID,
		model.Content,
		model.IsFromAdmin,
		model.IsSystemMessage,
		readBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment entity: %w", err)
	}
	return entity, nil
}

func (m *OrderCommentMapperImpl) ToModel(entity *order.Comment) (*models.OrderCommentModel, error) {
	if entity == nil {
		return nil, nil
	}

	readBy, err := json.Marshal(entity.ReadBy())
	if err != nil {
		return nil, fmt.Errorf("failed to encode read receipts: %w", err)
	}

	return &models.OrderCommentModel{
		ID:              entity.ID(),
		OrderID:         entity.OrderID(),
		UserID:          entity.UserID(),
		Content:         entity.Content(),
		IsFromAdmin:     entity.IsFromAdmin(),
		IsSystemMessage: entity.IsSystemMessage(),
		ReadBy:          datatypes.JSON(readBy),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

func (m *OrderCommentMapperImpl) ToEntities(modelList []*models.OrderCommentModel) ([]*order.Comment, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.OrderCommentModel) uint { return model.ID })
}
