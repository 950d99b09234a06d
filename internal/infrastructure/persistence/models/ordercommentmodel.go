package models

import (
	"time"

	"gorm.io/datatypes"
)

type OrderCommentModel struct {
	ID              uint   `gorm:"primaryKey"`
	OrderID         uint   `gorm:"not null;index"`
	UserID          uint   `gorm:"not null;index"`
	Content         string `gorm:"type:text;not null"`
	IsFromAdmin     bool   `gorm:"not null;default:false"`
	IsSystemMessage bool   `gorm:"not null;default:false"`
	// ReadBy is a JSON array of user IDs who have seen the comment.
	ReadBy    datatypes.JSON `gorm:"type:json"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
}

func (OrderCommentModel) TableName() string {
	return "order_comments"
}
