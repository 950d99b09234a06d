package models

import "time"

type UserAssignmentModel struct {
	ID        uint `gorm:"primaryKey"`
	ManagerID uint `gorm:"not null;index:idx_manager_user,unique"`
	UserID    uint `gorm:"not null;index:idx_manager_user,unique"`
	Active    bool `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserAssignmentModel) TableName() string {
	return "user_assignments"
}
