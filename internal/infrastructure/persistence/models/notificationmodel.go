package models

import "time"

type NotificationModel struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"not null;index:idx_user_read"`
	Kind         string `gorm:"size:50;not null"`
	Title        string `gorm:"size:255;not null"`
	Body         string `gorm:"type:text"`
	ResourceType string `gorm:"size:50"`
	ResourceID   uint
	ReadFlag     bool `gorm:"column:read;not null;default:false;index:idx_user_read"`
	ReadAt       *time.Time
	CreatedAt    time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
