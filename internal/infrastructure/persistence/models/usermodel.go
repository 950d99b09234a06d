package models

import (
	"time"

	"gorm.io/gorm"
)

type UserModel struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:255;not null"`
	Email          string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash   string `gorm:"size:255;not null"`
	CompanyName    string `gorm:"size:255"`
	Role           string `gorm:"size:32;not null;default:'user';index"`
	OrganizationID uint   `gorm:"index"`
	Active         bool   `gorm:"not null;default:true"`
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return "users"
}
