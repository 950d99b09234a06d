package mappers

import (
	"fmt"

	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/mapper"
)

type OrganizationMapper interface {
	ToEntity(model *models.OrganizationModel) (*organization.Organization, error)
	ToModel(entity *organization.Organization) (*models.OrganizationModel, error)
	ToEntities(models []*models.OrganizationModel) ([]*organization.Organization, error)
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) ToEntity(model *models.OrganizationModel) (*organization.Organization, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := organization.ReconstructOrganization(
		model.ID,
		model.Name,
		model.Website,
		organization.PricingTier(model.PricingTier),
		model.OrdersCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct organization entity: %w", err)
	}
	return entity, nil
}

func (m *OrganizationMapperImpl) ToModel(entity *organization.Organization) (*models.OrganizationModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.OrganizationModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Website:     entity.Website(),
		PricingTier: string(entity.PricingTier()),
		OrdersCount: entity.OrdersCount(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *OrganizationMapperImpl) ToEntities(modelList []*models.OrganizationModel) ([]*organization.Organization, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.OrganizationModel) uint { return model.ID })
}
