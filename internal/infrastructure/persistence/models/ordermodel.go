package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"not null;index"`
	OrganizationID uint   `gorm:"not null;index"`
	DomainID       *uint  `gorm:"index"`
	OrderType      string `gorm:"size:32;not null;index"`
	Status         string `gorm:"size:64;not null;index"`
	AnchorText     string `gorm:"size:500"`
	TargetURL      string `gorm:"size:2048;not null"`
	ContentTitle   string `gorm:"size:500"`
	ContentBody    string `gorm:"type:longtext"`
	Notes          string `gorm:"type:text"`
	PriceCents     int64  `gorm:"not null;default:0"`
	AssignedTo     *uint  `gorm:"index"`
	DateOrdered    time.Time
	DateCompleted  *time.Time
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (OrderModel) TableName() string {
	return "orders"
}
