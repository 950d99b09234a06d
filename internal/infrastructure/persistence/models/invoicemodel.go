package models

import (
	"time"

	"gorm.io/gorm"
)

type InvoiceModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"not null;index"`
	OrganizationID uint   `gorm:"not null;index"`
	Number         string `gorm:"size:64;not null;uniqueIndex"`
	AmountCents    int64  `gorm:"not null"`
	Currency       string `gorm:"size:8;not null;default:'USD'"`
	Status         string `gorm:"size:32;not null;default:'pending';index"`
	DueDate        time.Time `gorm:"not null;index"`
	PaidAt         *time.Time
	Notes          string `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}
