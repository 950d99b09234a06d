package models

import (
	"time"

	"gorm.io/gorm"
)

type DomainModel struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"size:255;not null;uniqueIndex"`
	Category          string `gorm:"size:100;index"`
	Language          string `gorm:"size:16"`
	DomainRating      int    `gorm:"not null;default:0;index"`
	MonthlyTraffic    int64  `gorm:"not null;default:0"`
	GuestPostCents    int64  `gorm:"not null;default:0"`
	NicheEditCents    int64  `gorm:"not null;default:0"`
	IsGlobal          bool   `gorm:"not null;default:false;index"`
	OrganizationID    *uint  `gorm:"index"`
	RatingRefreshedAt *time.Time `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (DomainModel) TableName() string {
	return "domains"
}
