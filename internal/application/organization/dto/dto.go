package dto

import (
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
)

type OrganizationDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Website     string    `json:"website,omitempty"`
	PricingTier string    `json:"pricing_tier"`
	OrdersCount int64     `json:"orders_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToOrganizationDTO(o *organization.Organization) *OrganizationDTO {
	if o == nil {
		return nil
	}
	return &OrganizationDTO{
		ID:          o.ID(),
		Name:        o.Name(),
		Website:     o.Website(),
		PricingTier: string(o.PricingTier()),
		OrdersCount: o.OrdersCount(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func ToOrganizationDTOs(orgs []*organization.Organization) []*OrganizationDTO {
	result := make([]*OrganizationDTO, 0, len(orgs))
	for _, o := range orgs {
		result = append(result, ToOrganizationDTO(o))
	}
	return result
}
