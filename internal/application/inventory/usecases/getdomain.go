package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/inventory/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type GetDomainQuery struct {
	Actor    authorization.Actor
	DomainID uint
}

type GetDomainUseCase struct {
	domainRepo inventory.Repository
	policy     *authorization.ResourcePolicy
	logger     logger.Interface
}

func NewGetDomainUseCase(
	domainRepo inventory.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *GetDomainUseCase {
	return &GetDomainUseCase{
		domainRepo: domainRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *GetDomainUseCase) Execute(ctx context.Context, query GetDomainQuery) (*dto.DomainDTO, error) {
	d, err := uc.domainRepo.FindByID(ctx, query.DomainID)
	if err != nil {
		return nil, err
	}

	if !uc.policy.CanManageInventory(query.Actor) && !d.VisibleTo(query.Actor.OrganizationID) {
		return nil, errors.NewNotFoundError("domain not found")
	}

	return dto.ToDomainDTO(d), nil
}
