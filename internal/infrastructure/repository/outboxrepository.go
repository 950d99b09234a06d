package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/mappers"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

type OutboxRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OutboxMapper
}

func NewOutboxRepository(db *gorm.DB) outbox.Repository {
	return &OutboxRepositoryImpl{
		db:     db,
		mapper: mappers.NewOutboxMapper(),
	}
}

func (r *OutboxRepositoryImpl) Enqueue(ctx context.Context, m *outbox.Message) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map outbox message to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to enqueue outbox message: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set outbox message ID: %w", err)
	}
	return nil
}

func (r *OutboxRepositoryImpl) ListDue(ctx context.Context, limit int) ([]*outbox.Message, error) {
	var modelList []*models.OutboxMessageModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND available_at <= ?", outbox.StatusPending, time.Now()).
		Order("available_at ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list due outbox messages: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *OutboxRepositoryImpl) Update(ctx context.Context, m *outbox.Message) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map outbox message to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update outbox message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("outbox message not found")
	}
	return nil
}

func (r *OutboxRepositoryImpl) CountByStatus(ctx context.Context) (map[outbox.Status]int64, error) {
	type row struct {
		Status string
		Count  int64
	}

	var rows []row
	err := r.db.WithContext(ctx).Model(&models.OutboxMessageModel{}).
		Select("status, COUNT(*) as count").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count outbox messages: %w", err)
	}

	counts := make(map[outbox.Status]int64, len(rows))
	for _, r := range rows {
		counts[outbox.Status(r.Status)] = r.Count
	}
	return counts, nil
}
