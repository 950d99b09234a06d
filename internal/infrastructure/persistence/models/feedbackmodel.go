package models

import (
	"time"

	"gorm.io/datatypes"
)

type FeedbackCampaignModel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:255;not null"`
	TargetRole string `gorm:"size:32;not null;default:''"`
	Active     bool   `gorm:"not null;default:true;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (FeedbackCampaignModel) TableName() string {
	return "feedback_campaigns"
}

type FeedbackQuestionModel struct {
	ID         uint   `gorm:"primaryKey"`
	CampaignID uint   `gorm:"not null;index"`
	Text       string `gorm:"size:500;not null"`
	Kind       string `gorm:"size:16;not null"`
	Position   int    `gorm:"not null;default:0"`
	Active     bool   `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (FeedbackQuestionModel) TableName() string {
	return "feedback_questions"
}

type FeedbackModel struct {
	ID uint `gorm:"primaryKey"`
	// One row per campaign and user, in any state; the unique index is
	// what makes generation idempotent under races.
	UserID      uint           `gorm:"not null;uniqueIndex:idx_campaign_user"`
	CampaignID  uint           `gorm:"not null;uniqueIndex:idx_campaign_user"`
	Status      string         `gorm:"size:16;not null;default:'pending';index"`
	Answers     datatypes.JSON `gorm:"type:json"`
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}
