package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
)

// Domain is a website in the placement inventory. Global domains are
// visible to every organization; scoped domains only to the owning one.
type Domain struct {
	id                uint
	name              string
	category          string
	language          string
	domainRating      int
	monthlyTraffic    int64
	guestPostCents    int64
	nicheEditCents    int64
	isGlobal          bool
	organizationID    *uint
	ratingRefreshedAt *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewDomain(name string, guestPostCents, nicheEditCents int64, isGlobal bool, organizationID *uint) (*Domain, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("domain name is required")
	}
	if guestPostCents < 0 || nicheEditCents < 0 {
		return nil, fmt.Errorf("prices cannot be negative")
	}
	if !isGlobal && (organizationID == nil || *organizationID == 0) {
		return nil, fmt.Errorf("a non-global domain requires an organization")
	}
	if isGlobal {
		organizationID = nil
	}

	now := time.Now()
	return &Domain{
		name:           name,
		guestPostCents: guestPostCents,
		nicheEditCents: nicheEditCents,
		isGlobal:       isGlobal,
		organizationID: organizationID,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructDomain(
	id uint,
	name, category, language string,
	domainRating int,
	monthlyTraffic int64,
	guestPostCents, nicheEditCents int64,
	isGlobal bool,
	organizationID *uint,
	ratingRefreshedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Domain, error) {
	if id == 0 {
		return nil, fmt.Errorf("domain ID cannot be zero")
	}
	return &Domain{
		id:                id,
		name:              name,
		category:          category,
		language:          language,
		domainRating:      domainRating,
		monthlyTraffic:    monthlyTraffic,
		guestPostCents:    guestPostCents,
		nicheEditCents:    nicheEditCents,
		isGlobal:          isGlobal,
		organizationID:    organizationID,
		ratingRefreshedAt: ratingRefreshedAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (d *Domain) ID() uint                      { return d.id }
func (d *Domain) Name() string                  { return d.name }
func (d *Domain) Category() string              { return d.category }
func (d *Domain) Language() string              { return d.language }
func (d *Domain) DomainRating() int             { return d.domainRating }
func (d *Domain) MonthlyTraffic() int64         { return d.monthlyTraffic }
func (d *Domain) GuestPostCents() int64         { return d.guestPostCents }
func (d *Domain) NicheEditCents() int64         { return d.nicheEditCents }
func (d *Domain) IsGlobal() bool                { return d.isGlobal }
func (d *Domain) OrganizationID() *uint         { return d.organizationID }
func (d *Domain) RatingRefreshedAt() *time.Time { return d.ratingRefreshedAt }
func (d *Domain) CreatedAt() time.Time          { return d.createdAt }
func (d *Domain) UpdatedAt() time.Time          { return d.updatedAt }

func (d *Domain) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("domain ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("domain ID cannot be zero")
	}
	d.id = id
	return nil
}

// PriceFor returns the list price in cents for an order type.
func (d *Domain) PriceFor(t order.OrderType) (int64, error) {
	switch t {
	case order.TypeGuestPost:
		return d.guestPostCents, nil
	case order.TypeNicheEdit:
		return d.nicheEditCents, nil
	}
	return 0, fmt.Errorf("no price for order type %s", t)
}

// VisibleTo reports whether the domain can be ordered from by a member of
// the given organization.
func (d *Domain) VisibleTo(organizationID uint) bool {
	if d.isGlobal {
		return true
	}
	return d.organizationID != nil && *d.organizationID == organizationID
}

func (d *Domain) UpdatePricing(guestPostCents, nicheEditCents *int64) error {
	if guestPostCents != nil {
		if *guestPostCents < 0 {
			return fmt.Errorf("guest post price cannot be negative")
		}
		d.guestPostCents = *guestPostCents
	}
	if nicheEditCents != nil {
		if *nicheEditCents < 0 {
			return fmt.Errorf("niche edit price cannot be negative")
		}
		d.nicheEditCents = *nicheEditCents
	}
	d.updatedAt = time.Now()
	return nil
}

func (d *Domain) UpdateMetadata(category, language *string) {
	if category != nil {
		d.category = *category
	}
	if language != nil {
		d.language = *language
	}
	d.updatedAt = time.Now()
}

// RefreshRating records metrics fetched from the rating provider.
func (d *Domain) RefreshRating(rating int, monthlyTraffic int64) error {
	if rating < 0 || rating > 100 {
		return fmt.Errorf("domain rating must be between 0 and 100")
	}
	d.domainRating = rating
	if monthlyTraffic >= 0 {
		d.monthlyTraffic = monthlyTraffic
	}
	now := time.Now()
	d.ratingRefreshedAt = &now
	d.updatedAt = now
	return nil
}

// MakeGlobal lifts the organization scope so every tenant can see the
// domain.
func (d *Domain) MakeGlobal() {
	d.isGlobal = true
	d.organizationID = nil
	d.updatedAt = time.Now()
}

// ScopeToOrganization restricts visibility to a single organization.
func (d *Domain) ScopeToOrganization(organizationID uint) error {
	if organizationID == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	d.isGlobal = false
	d.organizationID = &organizationID
	d.updatedAt = time.Now()
	return nil
}
