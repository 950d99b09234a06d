package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/mappers"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

type OrganizationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewOrganizationRepository(db *gorm.DB) organization.Repository {
	return &OrganizationRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *OrganizationRepositoryImpl) Create(ctx context.Context, o *organization.Organization) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return fmt.Errorf("failed to map organization entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	if err := o.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set organization ID: %w", err)
	}
	return nil
}

func (r *OrganizationRepositoryImpl) FindByID(ctx context.Context, id uint) (*organization.Organization, error) {
	var model models.OrganizationModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("organization not found")
		}
		return nil, fmt.Errorf("failed to get organization by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *OrganizationRepositoryImpl) FindByName(ctx context.Context, name string) (*organization.Organization, error) {
	var model models.OrganizationModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("organization not found")
		}
		return nil, fmt.Errorf("failed to get organization by name: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *OrganizationRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*organization.Organization, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.OrganizationModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	var modelList []*models.OrganizationModel
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *OrganizationRepositoryImpl) Update(ctx context.Context, o *organization.Organization) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return fmt.Errorf("failed to map organization entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("organization not found")
	}
	return nil
}

func (r *OrganizationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.OrganizationModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("organization not found")
	}
	return nil
}

func (r *OrganizationRepositoryImpl) IncrementOrdersCount(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&models.OrganizationModel{}).
		Where("id = ?", id).
		UpdateColumn("orders_count", gorm.Expr("orders_count + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment orders count: %w", err)
	}
	return nil
}
