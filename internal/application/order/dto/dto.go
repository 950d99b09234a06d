package dto

import (
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
)

type OrderDTO struct {
	ID             uint       `json:"id"`
	UserID         uint       `json:"user_id"`
	OrganizationID uint       `json:"organization_id"`
	DomainID       *uint      `json:"domain_id"`
	OrderType      string     `json:"order_type"`
	Status         string     `json:"status"`
	AnchorText     string     `json:"anchor_text"`
	TargetURL      string     `json:"target_url"`
	ContentTitle   string     `json:"content_title"`
	ContentBody    string     `json:"content_body"`
	Notes          string     `json:"notes"`
	PriceCents     int64      `json:"price_cents"`
	AssignedTo     *uint      `json:"assigned_to"`
	DateOrdered    time.Time  `json:"date_ordered"`
	DateCompleted  *time.Time `json:"date_completed"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CommentDTO struct {
	ID              uint      `json:"id"`
	OrderID         uint      `json:"order_id"`
	UserID          uint      `json:"user_id"`
	Content         string    `json:"content"`
	IsFromAdmin     bool      `json:"is_from_admin"`
	IsSystemMessage bool      `json:"is_system_message"`
	IsRead          bool      `json:"is_read"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToOrderDTO(o *order.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	return &OrderDTO{
		ID:             o.ID(),
		UserID:         o.UserID(),
		OrganizationID: o.OrganizationID(),
		DomainID:       o.DomainID(),
		OrderType:      string(o.Type()),
		Status:         string(o.Status()),
		AnchorText:     o.AnchorText(),
		TargetURL:      o.TargetURL(),
		ContentTitle:   o.ContentTitle(),
		ContentBody:    o.ContentBody(),
		Notes:          o.Notes(),
		PriceCents:     o.PriceCents(),
		AssignedTo:     o.AssignedTo(),
		DateOrdered:    o.DateOrdered(),
		DateCompleted:  o.DateCompleted(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

func ToOrderDTOs(orders []*order.Order) []*OrderDTO {
	result := make([]*OrderDTO, 0, len(orders))
	for _, o := range orders {
		result = append(result, ToOrderDTO(o))
	}
	return result
}

// ToCommentDTO renders the comment from the viewer's perspective; IsRead
// reflects whether the viewer appears in the read-receipt list.
func ToCommentDTO(c *order.Comment, viewerID uint) CommentDTO {
	return CommentDTO{
		ID:              c.ID(),
		OrderID:         c.OrderID(),
		UserID:          c.UserID(),
		Content:         c.Content(),
		IsFromAdmin:     c.IsFromAdmin(),
		IsSystemMessage: c.IsSystemMessage(),
		IsRead:          c.IsReadBy(viewerID),
		CreatedAt:       c.CreatedAt(),
	}
}

func ToCommentDTOs(comments []*order.Comment, viewerID uint) []CommentDTO {
	result := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		result = append(result, ToCommentDTO(c, viewerID))
	}
	return result
}
