package models

import (
	"time"

	"gorm.io/gorm"
)

type TicketModel struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	Subject    string `gorm:"size:500;not null"`
	Status     string `gorm:"size:32;not null;default:'open';index"`
	Priority   string `gorm:"size:16;not null;default:'normal'"`
	AssignedTo *uint  `gorm:"index"`
	Rating     *int
	ClosedAt   *time.Time
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
