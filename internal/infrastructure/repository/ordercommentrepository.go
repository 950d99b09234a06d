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

type OrderCommentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrderCommentMapper
}

func NewOrderCommentRepository(db *gorm.DB) order.CommentRepository {
	return &OrderCommentRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrderCommentMapper(),
	}
}

func (r *OrderCommentRepositoryImpl) Create(ctx context.Context, c *order.Comment) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map comment entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set comment ID: %w", err)
	}
	return nil
}

func (r *OrderCommentRepositoryImpl) FindByID(ctx context.Context, id uint) (*order.Comment, error) {
	var model models.OrderCommentModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to get comment by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *OrderCommentRepositoryImpl) ListByOrder(ctx context.Context, orderID uint) ([]*order.Comment, error) {
	var modelList []*models.OrderCommentModel
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *OrderCommentRepositoryImpl) Update(ctx context.Context, c *order.Comment) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map comment entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *OrderCommentRepositoryImpl) CountUnreadForUser(ctx context.Context, orderID, userID uint) (int64, error) {
	var count int64
	// JSON_CONTAINS needs the candidate serialized as a JSON scalar.
	err := r.db.WithContext(ctx).Model(&models.OrderCommentModel{}).
		Where("order_id = ?", orderID).
		Where("NOT JSON_CONTAINS(read_by, CAST(? AS JSON))", fmt.Sprintf("%d", userID)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread comments: %w", err)
	}
	return count, nil
}
