package mappers

import (
	"fmt"

	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/mapper"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	role := authorization.ParseRole(model.Role)
	entity, err := user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		model.CompanyName,
		role,
		model.OrganizationID,
		model.Active,
		model.LastLoginAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.UserModel{
		ID:             entity.ID(),
		Name:           entity.Name(),
		Email:          entity.Email(),
		PasswordHash:   entity.PasswordHash(),
		CompanyName:    entity.CompanyName(),
		Role:           entity.Role().String(),
		OrganizationID: entity.OrganizationID(),
		Active:         entity.IsActive(),
		LastLoginAt:    entity.LastLoginAt(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *UserMapperImpl) ToEntities(modelList []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.UserModel) uint { return model.ID })
}
