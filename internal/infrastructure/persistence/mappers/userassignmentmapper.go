package mappers

import (
	"fmt"

	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/mapper"
)

type UserAssignmentMapper interface {
	ToEntity(model *models.UserAssignmentModel) (*user.Assignment, error)
	ToModel(entity *user.Assignment) (*models.UserAssignmentModel, error)
	ToEntities(models []*models.UserAssignmentModel) ([]*user.Assignment, error)
}

type UserAssignmentMapperImpl struct{}

func NewUserAssignmentMapper() UserAssignmentMapper {
	return &UserAssignmentMapperImpl{}
}

func (m *UserAssignmentMapperImpl) ToEntity(model *models.UserAssignmentModel) (*user.Assignment, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := user.ReconstructAssignment(
		model.ID,
		model.ManagerID,
		model.UserID,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct assignment entity: %w", err)
	}
	return entity, nil
}

func (m *UserAssignmentMapperImpl) ToModel(entity *user.Assignment) (*models.UserAssignmentModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.UserAssignmentModel{
		ID:        entity.ID(),
		ManagerID: entity.ManagerID(),
		UserID:    entity.UserID(),
		Active:    entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *UserAssignmentMapperImpl) ToEntities(modelList []*models.UserAssignmentModel) ([]*user.Assignment, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.UserAssignmentModel) uint { return model.ID })
}
