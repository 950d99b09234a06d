package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/mappers"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewOrderRepository(db *gorm.DB) order.Repository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, o *order.Order) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return fmt.Errorf("failed to map order entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err := o.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set order ID: %w", err)
	}
	return nil
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to get order by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *OrderRepositoryImpl) List(ctx context.Context, filter order.ListFilter, offset, limit int) ([]*order.Order, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.OrderModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var modelList []*models.OrderModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *OrderRepositoryImpl) Update(ctx context.Context, o *order.Order) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return fmt.Errorf("failed to map order entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("order not found")
	}
	return nil
}

func (r *OrderRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.OrderModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("order not found")
	}
	return nil
}

func (r *OrderRepositoryImpl) CountByStatus(ctx context.Context, filter order.ListFilter) (map[order.Status]int64, error) {
	type row struct {
		Status string
		Count  int64
	}

	var rows []row
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.OrderModel{}), filter)
	if err := query.Select("status, COUNT(*) as count").Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	counts := make(map[order.Status]int64, len(rows))
	for _, r := range rows {
		counts[order.Status(r.Status)] = r.Count
	}
	return counts, nil
}

func (r *OrderRepositoryImpl) applyFilter(query *gorm.DB, filter order.ListFilter) *gorm.DB {
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if len(filter.UserIDs) > 0 {
		query = query.Where("user_id IN ?", filter.UserIDs)
	}
	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.OrderType != "" {
		query = query.Where("order_type = ?", filter.OrderType.String())
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.AssignedTo != 0 {
		query = query.Where("assigned_to = ?", filter.AssignedTo)
	}
	return query
}
