package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/mappers"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

type UserAssignmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserAssignmentMapper
}

func NewUserAssignmentRepository(db *gorm.DB) user.AssignmentRepository {
	return &UserAssignmentRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserAssignmentMapper(),
	}
}

func (r *UserAssignmentRepositoryImpl) Create(ctx context.Context, a *user.Assignment) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map assignment entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set assignment ID: %w", err)
	}
	return nil
}

func (r *UserAssignmentRepositoryImpl) FindByManagerAndUser(ctx context.Context, managerID, userID uint) (*user.Assignment, error) {
	var model models.UserAssignmentModel
	err := r.db.WithContext(ctx).
		Where("manager_id = ? AND user_id = ?", managerID, userID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("assignment not found")
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *UserAssignmentRepositoryImpl) ListActiveByManager(ctx context.Context, managerID uint) ([]*user.Assignment, error) {
	var modelList []*models.UserAssignmentModel
	err := r.db.WithContext(ctx).
		Where("manager_id = ? AND active = ?", managerID, true).
		Order("created_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *UserAssignmentRepositoryImpl) ManagedUserIDs(ctx context.Context, managerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.UserAssignmentModel{}).
		Where("manager_id = ? AND active = ?", managerID, true).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list managed user IDs: %w", err)
	}
	return ids, nil
}

func (r *UserAssignmentRepositoryImpl) Update(ctx context.Context, a *user.Assignment) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map assignment entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("assignment not found")
	}
	return nil
}

func (r *UserAssignmentRepositoryImpl) HasActiveAssignment(ctx context.Context, managerID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserAssignmentModel{}).
		Where("manager_id = ? AND user_id = ? AND active = ?", managerID, userID, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return count > 0, nil
}
