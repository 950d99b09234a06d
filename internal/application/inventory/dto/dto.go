package dto

import (
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
)

type DomainDTO struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Language          string     `json:"language"`
	DomainRating      int        `json:"domain_rating"`
	MonthlyTraffic    int64      `json:"monthly_traffic"`
	GuestPostCents    int64      `json:"guest_post_cents"`
	NicheEditCents    int64      `json:"niche_edit_cents"`
	IsGlobal          bool       `json:"is_global"`
	OrganizationID    *uint      `json:"organization_id"`
	RatingRefreshedAt *time.Time `json:"rating_refreshed_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func ToDomainDTO(d *inventory.Domain) *DomainDTO {
	if d == nil {
		return nil
	}
	return &DomainDTO{
		ID:                d.ID(),
		Name:              d.Name(),
		Category:          d.Category(),
		Language:          d.Language(),
		DomainRating:      d.DomainRating(),
		MonthlyTraffic:    d.MonthlyTraffic(),
		GuestPostCents:    d.GuestPostCents(),
		NicheEditCents:    d.NicheEditCents(),
		IsGlobal:          d.IsGlobal(),
		OrganizationID:    d.OrganizationID(),
		RatingRefreshedAt: d.RatingRefreshedAt(),
		CreatedAt:         d.CreatedAt(),
		UpdatedAt:         d.UpdatedAt(),
	}
}

func ToDomainDTOs(domains []*inventory.Domain) []*DomainDTO {
	result := make([]*DomainDTO, 0, len(domains))
	for _, d := range domains {
		result = append(result, ToDomainDTO(d))
	}
	return result
}
