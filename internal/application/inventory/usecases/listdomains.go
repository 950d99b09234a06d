package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/inventory/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ListDomainsQuery struct {
	Actor      authorization.Actor
	Category   string
	MinRating  int
	MaxPriceGP int64
	MaxPriceNE int64
	Search     string
	Offset     int
	Limit      int
}

type ListDomainsResult struct {
	Domains []*dto.DomainDTO `json:"domains"`
	Total   int64            `json:"total"`
}

// ListDomainsUseCase lists inventory. Staff see everything; customers see
// global domains plus the ones scoped to their own organization.
type ListDomainsUseCase struct {
	domainRepo inventory.Repository
	policy     *authorization.ResourcePolicy
	logger     logger.Interface
}

func NewListDomainsUseCase(
	domainRepo inventory.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *ListDomainsUseCase {
	return &ListDomainsUseCase{
		domainRepo: domainRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *ListDomainsUseCase) Execute(ctx context.Context, query ListDomainsQuery) (*ListDomainsResult, error) {
	filter := inventory.ListFilter{
		Category:   query.Category,
		MinRating:  query.MinRating,
		MaxPriceGP: query.MaxPriceGP,
		MaxPriceNE: query.MaxPriceNE,
		Search:     query.Search,
	}
	if !uc.policy.CanManageInventory(query.Actor) {
		filter.VisibleToOrg = query.Actor.OrganizationID
	}

	domains, total, err := uc.domainRepo.List(ctx, filter, query.Offset, query.Limit)
	if err != nil {
		return nil, err
	}

	return &ListDomainsResult{
		Domains: dto.ToDomainDTOs(domains),
		Total:   total,
	}, nil
}
