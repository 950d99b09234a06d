package models

import (
	"time"

	"gorm.io/datatypes"
)

type OutboxMessageModel struct {
	ID          uint           `gorm:"primaryKey"`
	Topic       string         `gorm:"size:64;not null;index"`
	Payload     datatypes.JSON `gorm:"type:json;not null"`
	Status      string         `gorm:"size:16;not null;default:'pending';index:idx_status_available"`
	Attempts    int            `gorm:"not null;default:0"`
	LastError   string         `gorm:"type:text"`
	AvailableAt time.Time      `gorm:"not null;index:idx_status_available"`
	ProcessedAt *time.Time
	CreatedAt   time.Time
}

func (OutboxMessageModel) TableName() string {
	return "outbox_messages"
}
