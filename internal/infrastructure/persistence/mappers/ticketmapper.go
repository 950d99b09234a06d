package mappers

import (
	"fmt"

	"github.com/linkdesk-io/linkdesk/internal/domain/ticket"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/mapper"
)

type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) (*models.TicketModel, error)
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.Subject,
		ticket.Status(model.Status),
		ticket.Priority(model.Priority),
		model.AssignedTo,
		model.Rating,
		model.ClosedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket entity: %w", err)
	}
	return entity, nil
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) (*models.TicketModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.TicketModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		Subject:    entity.Subject(),
		Status:     entity.Status().String(),
		Priority:   string(entity.Priority()),
		AssignedTo: entity.AssignedTo(),
		Rating:     entity.Rating(),
		ClosedAt:   entity.ClosedAt(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *TicketMapperImpl) ToEntities(modelList []*models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.TicketModel) uint { return model.ID })
}

type TicketCommentMapper interface {
	ToEntity(model *models.TicketCommentModel) (*ticket.Comment, error)
	ToModel(entity *ticket.Comment) (*models.TicketCommentModel, error)
	ToEntities(models []*models.TicketCommentModel) ([]*ticket.Comment, error)
}

type TicketCommentMapperImpl struct{}

func NewTicketCommentMapper() TicketCommentMapper {
	return &TicketCommentMapperImpl{}
}

func (m *TicketCommentMapperImpl) ToEntity(model *models.TicketCommentModel) (*ticket.Comment, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Content,
		model.IsFromStaff,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket comment entity: %w", err)
	}
	return entity, nil
}

func (m *TicketCommentMapperImpl) ToModel(entity *ticket.Comment) (*models.TicketCommentModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.TicketCommentModel{
		ID:          entity.ID(),
		TicketID:    entity.TicketID(),
		UserID:      entity.UserID(),
		Content:     entity.Content(),
		IsFromStaff: entity.IsFromStaff(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *TicketCommentMapperImpl) ToEntities(modelList []*models.TicketCommentModel) ([]*ticket.Comment, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.TicketCommentModel) uint { return model.ID })
}
