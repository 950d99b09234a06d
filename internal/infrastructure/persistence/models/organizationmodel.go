package models

import (
	"time"

	"gorm.io/gorm"
)

type OrganizationModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null;uniqueIndex"`
	Website     string `gorm:"size:255"`
	PricingTier string `gorm:"size:32;not null;default:'standard'"`
	OrdersCount int64  `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}
