package dto

import (
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/notification"
)

type NotificationDTO struct {
	ID           uint       `json:"id"`
	Kind         string     `json:"kind"`
	Title        string     `json:"title"`
	Body         string     `json:"body,omitempty"`
	ResourceType string     `json:"resource_type,omitempty"`
	ResourceID   uint       `json:"resource_id,omitempty"`
	Read         bool       `json:"read"`
	ReadAt       *time.Time `json:"read_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:           n.ID(),
		Kind:         string(n.Kind()),
		Title:        n.Title(),
		Body:         n.Body(),
		ResourceType: n.ResourceType(),
		ResourceID:   n.ResourceID(),
		Read:         n.IsRead(),
		ReadAt:       n.ReadAt(),
		CreatedAt:    n.CreatedAt(),
	}
}

func ToNotificationDTOs(ns []*notification.Notification) []*NotificationDTO {
	result := make([]*NotificationDTO, 0, len(ns))
	for _, n := range ns {
		result = append(result, ToNotificationDTO(n))
	}
	return result
}
