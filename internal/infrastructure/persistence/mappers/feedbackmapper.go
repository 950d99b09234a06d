package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/mapper"
)

type feedbackAnswerRecord struct {
	QuestionID uint   `json:"question_id"`
	Rating     *int   `json:"rating,omitempty"`
	Text       string `json:"text,omitempty"`
}

type FeedbackCampaignMapper interface {
	ToEntity(model *models.FeedbackCampaignModel) (*feedback.Campaign, error)
	ToModel(entity *feedback.Campaign) (*models.FeedbackCampaignModel, error)
	ToEntities(models []*models.FeedbackCampaignModel) ([]*feedback.Campaign, error)
}

type FeedbackCampaignMapperImpl struct{}

func NewFeedbackCampaignMapper() FeedbackCampaignMapper {
	return &FeedbackCampaignMapperImpl{}
}

func (m *FeedbackCampaignMapperImpl) ToEntity(model *models.FeedbackCampaignModel) (*feedback.Campaign, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := feedback.ReconstructCampaign(
		model.ID,
		model.Name,
		authorization.Role(model.TargetRole),
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct campaign entity: %w", err)
	}
	return entity, nil
}

func (m *FeedbackCampaignMapperImpl) ToModel(entity *feedback.Campaign) (*models.FeedbackCampaignModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.FeedbackCampaignModel{
		ID:         entity.ID(),
		Name:       entity.Name(),
		TargetRole: string(entity.TargetRole()),
		Active:     entity.IsActive(),
	}, nil
}

func (m *FeedbackCampaignMapperImpl) ToEntities(modelList []*models.FeedbackCampaignModel) ([]*feedback.Campaign, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.FeedbackCampaignModel) uint { return model.ID })
}

type FeedbackMapper interface {
	ToEntity(model *models.FeedbackModel) (*feedback.Feedback, error)
	ToModel(entity *feedback.Feedback) (*models.FeedbackModel, error)
	ToEntities(models []*models.FeedbackModel) ([]*feedback.Feedback, error)
}

type FeedbackMapperImpl struct{}

func NewFeedbackMapper() FeedbackMapper {
	return &FeedbackMapperImpl{}
}

func (m *FeedbackMapperImpl) ToEntity(model *models.FeedbackModel) (*feedback.Feedback, error) {
	if model == nil {
		return nil, nil
	}

	var records []feedbackAnswerRecord
	if len(model.Answers) > 0 {
		if err := json.Unmarshal(model.Answers, &records); err != nil {
			return nil, fmt.Errorf("failed to decode feedback answers: %w", err)
		}
	}
	answers := make([]feedback.Answer, 0, len(records))
	for _, r := range records {
		answers = append(answers, feedback.Answer{QuestionID: r.QuestionID, Rating: r.Rating, Text: r.Text})
	}
	if len(answers) == 0 {
		answers = nil
	}

	entity, err := feedback.ReconstructFeedback(
		model.ID,
		model.UserID,
		model.CampaignID,
		feedback.Status(model.Status),
		answers,
		model.CreatedAt,
		model.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct feedback entity: %w", err)
	}
	return entity, nil
}

func (m *FeedbackMapperImpl) ToModel(entity *feedback.Feedback) (*models.FeedbackModel, error) {
	if entity == nil {
		return nil, nil
	}

	var answersJSON datatypes.JSON
	if answers := entity.Answers(); len(answers) > 0 {
		records := make([]feedbackAnswerRecord, 0, len(answers))
		for _, a := range answers {
			records = append(records, feedbackAnswerRecord{QuestionID: a.QuestionID, Rating: a.Rating, Text: a.Text})
		}
		data, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("failed to encode feedback answers: %w", err)
		}
		answersJSON = datatypes.JSON(data)
	}

	return &models.FeedbackModel{
		ID:          entity.ID(),
		UserID:      entity.UserID(),
		CampaignID:  entity.CampaignID(),
		Status:      string(entity.Status()),
		Answers:     answersJSON,
		CreatedAt:   entity.CreatedAt(),
		CompletedAt: entity.CompletedAt(),
	}, nil
}

func (m *FeedbackMapperImpl) ToEntities(modelList []*models.FeedbackModel) ([]*feedback.Feedback, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.FeedbackModel) uint { return model.ID })
}

type FeedbackQuestionMapper interface {
	ToEntity(model *models.FeedbackQuestionModel) (*feedback.Question, error)
	ToModel(entity *feedback.Question) (*models.FeedbackQuestionModel, error)
	ToEntities(models []*models.FeedbackQuestionModel) ([]*feedback.Question, error)
}

type FeedbackQuestionMapperImpl struct{}

func NewFeedbackQuestionMapper() FeedbackQuestionMapper {
	return &FeedbackQuestionMapperImpl{}
}

func (m *FeedbackQuestionMapperImpl) ToEntity(model *models.FeedbackQuestionModel) (*feedback.Question, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := feedback.ReconstructQuestion(
		model.ID,
		model.CampaignID,
		model.Text,
		feedback.QuestionKind(model.Kind),
		model.Position,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct question entity: %w", err)
	}
	return entity, nil
}

func (m *FeedbackQuestionMapperImpl) ToModel(entity *feedback.Question) (*models.FeedbackQuestionModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.FeedbackQuestionModel{
		ID:         entity.ID(),
		CampaignID: entity.CampaignID(),
		Text:       entity.Text(),
		Kind:       string(entity.Kind()),
		Position:   entity.Position(),
		Active:     entity.IsActive(),
	}, nil
}

func (m *FeedbackQuestionMapperImpl) ToEntities(modelList []*models.FeedbackQuestionModel) ([]*feedback.Question, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.FeedbackQuestionModel) uint { return model.ID })
}
