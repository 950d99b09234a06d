package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type UpdateDomainCommand struct {
	Actor          authorization.Actor
	DomainID       uint
	Category       *string
	Language       *string
	GuestPostCents *int64
	NicheEditCents *int64
	// MakeGlobal lifts the organization scope; ScopeToOrganization sets
	// it. Setting both is rejected.
	MakeGlobal          bool
	ScopeToOrganization *uint
}

type UpdateDomainResult struct {
	DomainID uint `json:"domain_id"`
}

type UpdateDomainUseCase struct {
	domainRepo inventory.Repository
	policy     *authorization.ResourcePolicy
	logger     logger.Interface
}

func NewUpdateDomainUseCase(
	domainRepo inventory.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *UpdateDomainUseCase {
	return &UpdateDomainUseCase{
		domainRepo: domainRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *UpdateDomainUseCase) Execute(ctx context.Context, cmd UpdateDomainCommand) (*UpdateDomainResult, error) {
	if !uc.policy.CanManageInventory(cmd.Actor) {
		return nil, errors.NewForbiddenError("you cannot manage inventory")
	}
	if cmd.MakeGlobal && cmd.ScopeToOrganization != nil {
		return nil, errors.NewValidationError("a domain cannot be both global and organization scoped")
	}

	d, err := uc.domainRepo.FindByID(ctx, cmd.DomainID)
	if err != nil {
		return nil, err
	}

	if cmd.Category != nil || cmd.Language != nil {
		d.UpdateMetadata(cmd.Category, cmd.Language)
	}
	if cmd.GuestPostCents != nil || cmd.NicheEditCents != nil {
		if err := d.UpdatePricing(cmd.GuestPostCents, cmd.NicheEditCents); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.MakeGlobal {
		d.MakeGlobal()
	}
	if cmd.ScopeToOrganization != nil {
		if err := d.ScopeToOrganization(*cmd.ScopeToOrganization); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.domainRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update domain", "domain_id", cmd.DomainID, "error", err)
		return nil, err
	}

	uc.logger.Infow("domain updated", "domain_id", d.ID(), "actor_id", cmd.Actor.UserID)

	return &UpdateDomainResult{DomainID: d.ID()}, nil
}
