package dto

import (
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/user"
)

type UserDTO struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	CompanyName    string     `json:"company_name"`
	Role           string     `json:"role"`
	OrganizationID uint       `json:"organization_id"`
	Active         bool       `json:"active"`
	LastLoginAt    *time.Time `json:"last_login_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type AssignmentDTO struct {
	ID        uint      `json:"id"`
	ManagerID uint      `json:"manager_id"`
	UserID    uint      `json:"user_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:             u.ID(),
		Name:           u.Name(),
		Email:          u.Email(),
		CompanyName:    u.CompanyName(),
		Role:           string(u.Role()),
		OrganizationID: u.OrganizationID(),
		Active:         u.IsActive(),
		LastLoginAt:    u.LastLoginAt(),
		CreatedAt:      u.CreatedAt(),
		UpdatedAt:      u.UpdatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	result := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, ToUserDTO(u))
	}
	return result
}

func ToAssignmentDTO(a *user.Assignment) *AssignmentDTO {
	if a == nil {
		return nil
	}
	return &AssignmentDTO{
		ID:        a.ID(),
		ManagerID: a.ManagerID(),
		UserID:    a.UserID(),
		Active:    a.IsActive(),
		CreatedAt: a.CreatedAt(),
	}
}
