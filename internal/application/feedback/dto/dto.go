package dto

import (
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
)

type CampaignDTO struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	TargetRole string    `json:"target_role,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

type QuestionDTO struct {
	ID         uint   `json:"id"`
	CampaignID uint   `json:"campaign_id"`
	Text       string `json:"text"`
	Kind       string `json:"kind"`
	Position   int    `json:"position"`
	Active     bool   `json:"active"`
}

type AnswerDTO struct {
	QuestionID uint   `json:"question_id"`
	Rating     *int   `json:"rating,omitempty"`
	Text       string `json:"text,omitempty"`
}

type FeedbackDTO struct {
	ID          uint        `json:"id"`
	UserID      uint        `json:"user_id"`
	CampaignID  uint        `json:"campaign_id"`
	Status      string      `json:"status"`
	Answers     []AnswerDTO `json:"answers,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at"`
}

func ToCampaignDTO(c *feedback.Campaign) *CampaignDTO {
	if c == nil {
		return nil
	}
	return &CampaignDTO{
		ID:         c.ID(),
		Name:       c.Name(),
		TargetRole: string(c.TargetRole()),
		Active:     c.IsActive(),
		CreatedAt:  c.CreatedAt(),
	}
}

func ToCampaignDTOs(campaigns []*feedback.Campaign) []*CampaignDTO {
	result := make([]*CampaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		result = append(result, ToCampaignDTO(c))
	}
	return result
}

func ToQuestionDTO(q *feedback.Question) *QuestionDTO {
	if q == nil {
		return nil
	}
	return &QuestionDTO{
		ID:         q.ID(),
		CampaignID: q.CampaignID(),
		Text:       q.Text(),
		Kind:       string(q.Kind()),
		Position:   q.Position(),
		Active:     q.IsActive(),
	}
}

func ToQuestionDTOs(questions []*feedback.Question) []*QuestionDTO {
	result := make([]*QuestionDTO, 0, len(questions))
	for _, q := range questions {
		result = append(result, ToQuestionDTO(q))
	}
	return result
}

func ToFeedbackDTO(f *feedback.Feedback) *FeedbackDTO {
	if f == nil {
		return nil
	}
	answers := make([]AnswerDTO, 0, len(f.Answers()))
	for _, a := range f.Answers() {
		answers = append(answers, AnswerDTO{
			QuestionID: a.QuestionID,
			Rating:     a.Rating,
			Text:       a.Text,
		})
	}
	return &FeedbackDTO{
		ID:          f.ID(),
		UserID:      f.UserID(),
		CampaignID:  f.CampaignID(),
		Status:      string(f.Status()),
		Answers:     answers,
		CreatedAt:   f.CreatedAt(),
		CompletedAt: f.CompletedAt(),
	}
}

func ToFeedbackDTOs(feedbacks []*feedback.Feedback) []*FeedbackDTO {
	result := make([]*FeedbackDTO, 0, len(feedbacks))
	for _, f := range feedbacks {
		result = append(result, ToFeedbackDTO(f))
	}
	return result
}
