package mappers

import (
	"fmt"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/mapper"
)

type DomainMapper interface {
	ToEntity(model *models.DomainModel) (*inventory.Domain, error)
	ToModel(entity *inventory.Domain) (*models.DomainModel, error)
	ToEntities(models []*models.DomainModel) ([]*inventory.Domain, error)
}

type DomainMapperImpl struct{}

func NewDomainMapper() DomainMapper {
	return &DomainMapperImpl{}
}

func (m *DomainMapperImpl) ToEntity(model *models.DomainModel) (*inventory.Domain, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := inventory.ReconstructDomain(
		model.ID,
		model.Name,
		model.Category,
		model.Language,
		model.DomainRating,
		model.MonthlyTraffic,
		model.GuestPostCents,
		model.NicheEditCents,
		model.IsGlobal,
		model.OrganizationID,
		model.RatingRefreshedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct domain entity: %w", err)
	}
	return entity, nil
}

func (m *DomainMapperImpl) ToModel(entity *inventory.Domain) (*models.DomainModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.DomainModel{
		ID:                entity.ID(),
		Name:              entity.Name(),
		Category:          entity.Category(),
		Language:          entity.Language(),
		DomainRating:      entity.DomainRating(),
		MonthlyTraffic:    entity.MonthlyTraffic(),
		GuestPostCents:    entity.GuestPostCents(),
		NicheEditCents:    entity.NicheEditCents(),
		IsGlobal:          entity.IsGlobal(),
		OrganizationID:    entity.OrganizationID(),
		RatingRefreshedAt: entity.RatingRefreshedAt(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *DomainMapperImpl) ToEntities(modelList []*models.DomainModel) ([]*inventory.Domain, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.DomainModel) uint { return model.ID })
}
