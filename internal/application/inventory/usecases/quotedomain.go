package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type QuoteDomainQuery struct {
	Actor     authorization.Actor
	DomainID  uint
	OrderType string
}

type QuoteDomainResult struct {
	DomainID        uint   `json:"domain_id"`
	OrderType       string `json:"order_type"`
	ListPriceCents  int64  `json:"list_price_cents"`
	FinalPriceCents int64  `json:"final_price_cents"`
	PricingTier     string `json:"pricing_tier"`
}

// QuoteDomainUseCase prices a placement on a domain for the actor's
// organization, with the tier discount already applied.
type QuoteDomainUseCase struct {
	domainRepo inventory.Repository
	orgRepo    organization.Repository
	policy     *authorization.ResourcePolicy
	logger     logger.Interface
}

func NewQuoteDomainUseCase(
	domainRepo inventory.Repository,
	orgRepo organization.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *QuoteDomainUseCase {
	return &QuoteDomainUseCase{
		domainRepo: domainRepo,
		orgRepo:    orgRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *QuoteDomainUseCase) Execute(ctx context.Context, query QuoteDomainQuery) (*QuoteDomainResult, error) {
	orderType := order.OrderType(query.OrderType)
	if !orderType.IsValid() {
		return nil, errors.NewValidationError("unknown order type: " + query.OrderType)
	}

	d, err := uc.domainRepo.FindByID(ctx, query.DomainID)
	if err != nil {
		return nil, err
	}
	if !uc.policy.CanManageInventory(query.Actor) && !d.VisibleTo(query.Actor.OrganizationID) {
		return nil, errors.NewNotFoundError("domain not found")
	}

	org, err := uc.orgRepo.FindByID(ctx, query.Actor.OrganizationID)
	if err != nil {
		return nil, err
	}

	listPrice, err := d.PriceFor(orderType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	return &QuoteDomainResult{
		DomainID:        d.ID(),
		OrderType:       string(orderType),
		ListPriceCents:  listPrice,
		FinalPriceCents: org.ApplyDiscount(listPrice),
		PricingTier:     string(org.PricingTier()),
	}, nil
}
