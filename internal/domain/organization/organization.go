package organization

import (
	"fmt"
	"time"
)

// PricingTier controls the discount applied when quoting orders for an
// organization's users.
type PricingTier string

const (
	TierStandard   PricingTier = "standard"
	TierPreferred  PricingTier = "preferred"
	TierEnterprise PricingTier = "enterprise"
)

func (t PricingTier) IsValid() bool {
	return t == TierStandard || t == TierPreferred || t == TierEnterprise
}

// DiscountPercent returns the percentage knocked off list price.
func (t PricingTier) DiscountPercent() int {
	switch t {
	case TierPreferred:
		return 5
	case TierEnterprise:
		return 10
	}
	return 0
}

// Organization groups users for scoping and billing.
type Organization struct {
	id          uint
	name        string
	website     string
	pricingTier PricingTier
	ordersCount int64
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOrganization(name, website string) (*Organization, error) {
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}

	now := time.Now()
	return &Organization{
		name:        name,
		website:     website,
		pricingTier: TierStandard,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructOrganization(id uint, name, website string, tier PricingTier, ordersCount int64, createdAt, updatedAt time.Time) (*Organization, error) {
	if id == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid pricing tier: %s", tier)
	}
	return &Organization{
		id:          id,
		name:        name,
		website:     website,
		pricingTier: tier,
		ordersCount: ordersCount,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (o *Organization) ID() uint                 { return o.id }
func (o *Organization) Name() string             { return o.name }
func (o *Organization) Website() string          { return o.website }
func (o *Organization) PricingTier() PricingTier { return o.pricingTier }
func (o *Organization) OrdersCount() int64       { return o.ordersCount }
func (o *Organization) CreatedAt() time.Time     { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time     { return o.updatedAt }

func (o *Organization) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.id = id
	return nil
}

func (o *Organization) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("organization name cannot be empty")
	}
	o.name = name
	o.updatedAt = time.Now()
	return nil
}

func (o *Organization) SetWebsite(website string) {
	o.website = website
	o.updatedAt = time.Now()
}

func (o *Organization) ChangeTier(tier PricingTier) error {
	if !tier.IsValid() {
		return fmt.Errorf("invalid pricing tier: %s", tier)
	}
	o.pricingTier = tier
	o.updatedAt = time.Now()
	return nil
}

// ApplyDiscount returns the tier-discounted price in cents.
func (o *Organization) ApplyDiscount(listPriceCents int64) int64 {
	discount := int64(o.pricingTier.DiscountPercent())
	return listPriceCents - listPriceCents*discount/100
}
