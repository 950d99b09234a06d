package user

import (
	"fmt"
	"time"
)

// Assignment links a user_manager to a user they manage. Revoking sets
// active to false instead of deleting the row, preserving the assignment
// history.
type Assignment struct {
	id        uint
	managerID uint
	userID    uint
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewAssignment(managerID, userID uint) (*Assignment, error) {
	if managerID == 0 {
		return nil, fmt.Errorf("manager ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if managerID == userID {
		return nil, fmt.Errorf("a manager cannot be assigned to themselves")
	}

	now := time.Now()
	return &Assignment{
		managerID: managerID,
		userID:    userID,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAssignment(id, managerID, userID uint, active bool, createdAt, updatedAt time.Time) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	return &Assignment{
		id:        id,
		managerID: managerID,
		userID:    userID,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Assignment) ID() uint             { return a.id }
func (a *Assignment) ManagerID() uint      { return a.managerID }
func (a *Assignment) UserID() uint         { return a.userID }
func (a *Assignment) IsActive() bool       { return a.active }
func (a *Assignment) CreatedAt() time.Time { return a.createdAt }
func (a *Assignment) UpdatedAt() time.Time { return a.updatedAt }

func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Assignment) Revoke() {
	a.active = false
	a.updatedAt = time.Now()
}

func (a *Assignment) Reactivate() {
	a.active = true
	a.updatedAt = time.Now()
}
