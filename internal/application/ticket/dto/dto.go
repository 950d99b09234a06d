package dto

import (
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID         uint       `json:"id"`
	UserID     uint       `json:"user_id"`
	Subject    string     `json:"subject"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	AssignedTo *uint      `json:"assigned_to"`
	Rating     *int       `json:"rating"`
	ClosedAt   *time.Time `json:"closed_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	UserID      uint      `json:"user_id"`
	Content     string    `json:"content"`
	IsFromStaff bool      `json:"is_from_staff"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:         t.ID(),
		UserID:     t.UserID(),
		Subject:    t.Subject(),
		Status:     string(t.Status()),
		Priority:   string(t.Priority()),
		AssignedTo: t.AssignedTo(),
		Rating:     t.Rating(),
		ClosedAt:   t.ClosedAt(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, ToTicketDTO(t))
	}
	return result
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:          c.ID(),
		TicketID:    c.TicketID(),
		UserID:      c.UserID(),
		Content:     c.Content(),
		IsFromStaff: c.IsFromStaff(),
		CreatedAt:   c.CreatedAt(),
	}
}

func ToCommentDTOs(comments []*ticket.Comment) []CommentDTO {
	result := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		result = append(result, ToCommentDTO(c))
	}
	return result
}
