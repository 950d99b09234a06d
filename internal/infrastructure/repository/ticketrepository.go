package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/linkdesk-io/linkdesk/internal/domain/ticket"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/mappers"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

type TicketRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) ticket.Repository {
	return &TicketRepositoryImpl{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map ticket entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}
	return nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *TicketRepositoryImpl) List(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TicketModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var modelList []*models.TicketModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map ticket entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepositoryImpl) CloseAllOpen(ctx context.Context) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("status <> ?", ticket.StatusClosed.String()).
		Updates(map[string]interface{}{
			"status":     ticket.StatusClosed.String(),
			"closed_at":  now,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to close open tickets: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TicketRepositoryImpl) CountByStatus(ctx context.Context, filter ticket.ListFilter) (map[ticket.Status]int64, error) {
	type row struct {
		Status string
		Count  int64
	}

	var rows []row
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TicketModel{}), filter)
	if err := query.Select("status, COUNT(*) as count").Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[ticket.Status]int64, len(rows))
	for _, r := range rows {
		counts[ticket.Status(r.Status)] = r.Count
	}
	return counts, nil
}

func (r *TicketRepositoryImpl) applyFilter(query *gorm.DB, filter ticket.ListFilter) *gorm.DB {
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if len(filter.UserIDs) > 0 {
		query = query.Where("user_id IN ?", filter.UserIDs)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.AssignedTo != 0 {
		query = query.Where("assigned_to = ?", filter.AssignedTo)
	}
	return query
}

type TicketCommentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketCommentMapper
}

func NewTicketCommentRepository(db *gorm.DB) ticket.CommentRepository {
	return &TicketCommentRepositoryImpl{
		db:     db,
		mapper: mappers.NewTicketCommentMapper(),
	}
}

func (r *TicketCommentRepositoryImpl) Create(ctx context.Context, c *ticket.Comment) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map ticket comment entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket comment ID: %w", err)
	}
	return nil
}

func (r *TicketCommentRepositoryImpl) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var modelList []*models.TicketCommentModel
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket comments: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}
