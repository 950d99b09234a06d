package models

import "time"

type TicketCommentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	UserID      uint   `gorm:"not null;index"`
	Content     string `gorm:"type:text;not null"`
	IsFromStaff bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"index"`
}

func (TicketCommentModel) TableName() string {
	return "ticket_comments"
}
