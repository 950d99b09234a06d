package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/mappers"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

type FeedbackCampaignRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.FeedbackCampaignMapper
}

func NewFeedbackCampaignRepository(db *gorm.DB) feedback.CampaignRepository {
	return &FeedbackCampaignRepositoryImpl{
		db:     db,
		mapper: mappers.NewFeedbackCampaignMapper(),
	}
}

func (r *FeedbackCampaignRepositoryImpl) Create(ctx context.Context, c *feedback.Campaign) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map campaign entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set campaign ID: %w", err)
	}
	return nil
}

func (r *FeedbackCampaignRepositoryImpl) FindByID(ctx context.Context, id uint) (*feedback.Campaign, error) {
	var model models.FeedbackCampaignModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("campaign not found")
		}
		return nil, fmt.Errorf("failed to get campaign by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *FeedbackCampaignRepositoryImpl) List(ctx context.Context, activeOnly bool, offset, limit int) ([]*feedback.Campaign, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.FeedbackCampaignModel{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	var modelList []*models.FeedbackCampaignModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *FeedbackCampaignRepositoryImpl) Update(ctx context.Context, c *feedback.Campaign) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map campaign entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update campaign: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("campaign not found")
	}
	return nil
}

type FeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.FeedbackMapper
}

func NewFeedbackRepository(db *gorm.DB) feedback.Repository {
	return &FeedbackRepositoryImpl{
		db:     db,
		mapper: mappers.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepositoryImpl) Create(ctx context.Context, f *feedback.Feedback) error {
	model, err := r.mapper.ToModel(f)
	if err != nil {
		return fmt.Errorf("failed to map feedback entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	if err := f.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set feedback ID: %w", err)
	}
	return nil
}

func (r *FeedbackRepositoryImpl) FindByID(ctx context.Context, id uint) (*feedback.Feedback, error) {
	var model models.FeedbackModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("feedback not found")
		}
		return nil, fmt.Errorf("failed to get feedback by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *FeedbackRepositoryImpl) FindByCampaignAndUser(ctx context.Context, campaignID, userID uint) (*feedback.Feedback, error) {
	var model models.FeedbackModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND user_id = ?", campaignID, userID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("feedback not found")
		}
		return nil, fmt.Errorf("failed to get feedback by campaign: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *FeedbackRepositoryImpl) ListByUser(ctx context.Context, userID uint, pendingOnly bool, offset, limit int) ([]*feedback.Feedback, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.FeedbackModel{}).Where("user_id = ?", userID)
	if pendingOnly {
		query = query.Where("status = ?", feedback.StatusPending)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feedbacks: %w", err)
	}

	var modelList []*models.FeedbackModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list feedbacks: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *FeedbackRepositoryImpl) ListByCampaign(ctx context.Context, campaignID uint, offset, limit int) ([]*feedback.Feedback, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.FeedbackModel{}).Where("campaign_id = ?", campaignID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feedbacks: %w", err)
	}

	var modelList []*models.FeedbackModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list feedbacks: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *FeedbackRepositoryImpl) Update(ctx context.Context, f *feedback.Feedback) error {
	model, err := r.mapper.ToModel(f)
	if err != nil {
		return fmt.Errorf("failed to map feedback entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("feedback not found")
	}
	return nil
}

type FeedbackQuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.FeedbackQuestionMapper
}

func NewFeedbackQuestionRepository(db *gorm.DB) feedback.QuestionRepository {
	return &FeedbackQuestionRepositoryImpl{
		db:     db,
		mapper: mappers.NewFeedbackQuestionMapper(),
	}
}

func (r *FeedbackQuestionRepositoryImpl) Create(ctx context.Context, q *feedback.Question) error {
	model, err := r.mapper.ToModel(q)
	if err != nil {
		return fmt.Errorf("failed to map question entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	if err := q.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set question ID: %w", err)
	}
	return nil
}

func (r *FeedbackQuestionRepositoryImpl) FindByID(ctx context.Context, id uint) (*feedback.Question, error) {
	var model models.FeedbackQuestionModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("question not found")
		}
		return nil, fmt.Errorf("failed to get question by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *FeedbackQuestionRepositoryImpl) ListByCampaign(ctx context.Context, campaignID uint, activeOnly bool) ([]*feedback.Question, error) {
	query := r.db.WithContext(ctx).Where("campaign_id = ?", campaignID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var modelList []*models.FeedbackQuestionModel
	if err := query.Order("position ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *FeedbackQuestionRepositoryImpl) Update(ctx context.Context, q *feedback.Question) error {
	model, err := r.mapper.ToModel(q)
	if err != nil {
		return fmt.Errorf("failed to map question entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("question not found")
	}
	return nil
}
