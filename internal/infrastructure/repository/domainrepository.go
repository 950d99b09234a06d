package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/mappers"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

type DomainRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DomainMapper
}

func NewDomainRepository(db *gorm.DB) inventory.Repository {
	return &DomainRepositoryImpl{
		db:     db,
		mapper: mappers.NewDomainMapper(),
	}
}

func (r *DomainRepositoryImpl) Create(ctx context.Context, d *inventory.Domain) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map domain entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create domain: %w", err)
	}

	if err := d.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set domain ID: %w", err)
	}
	return nil
}

func (r *DomainRepositoryImpl) FindByID(ctx context.Context, id uint) (*inventory.Domain, error) {
	var model models.DomainModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("domain not found")
		}
		return nil, fmt.Errorf("failed to get domain by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *DomainRepositoryImpl) FindByName(ctx context.Context, name string) (*inventory.Domain, error) {
	var model models.DomainModel
	err := r.db.WithContext(ctx).
		Where("name = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("domain not found")
		}
		return nil, fmt.Errorf("failed to get domain by name: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *DomainRepositoryImpl) List(ctx context.Context, filter inventory.ListFilter, offset, limit int) ([]*inventory.Domain, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.DomainModel{})

	if filter.VisibleToOrg != 0 {
		query = query.Where("is_global = ? OR organization_id = ?", true, filter.VisibleToOrg)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinRating > 0 {
		query = query.Where("domain_rating >= ?", filter.MinRating)
	}
	if filter.MaxPriceGP > 0 {
		query = query.Where("guest_post_cents <= ?", filter.MaxPriceGP)
	}
	if filter.MaxPriceNE > 0 {
		query = query.Where("niche_edit_cents <= ?", filter.MaxPriceNE)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count domains: %w", err)
	}

	var modelList []*models.DomainModel
	if err := query.Order("domain_rating DESC, name ASC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list domains: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *DomainRepositoryImpl) Update(ctx context.Context, d *inventory.Domain) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map domain entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update domain: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("domain not found")
	}
	return nil
}

func (r *DomainRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.DomainModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete domain: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("domain not found")
	}
	return nil
}

func (r *DomainRepositoryImpl) ListStaleRatings(ctx context.Context, maxAgeHours int, limit int) ([]*inventory.Domain, error) {
	cutoff := time.Now().Add(-time.Duration(maxAgeHours) * time.Hour)

	var modelList []*models.DomainModel
	err := r.db.WithContext(ctx).
		Where("rating_refreshed_at IS NULL OR rating_refreshed_at < ?", cutoff).
		Order("rating_refreshed_at IS NULL DESC, rating_refreshed_at ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stale domains: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}
