package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type CreateDomainCommand struct {
	Actor          authorization.Actor
	Name           string
	Category       string
	Language       string
	GuestPostCents int64
	NicheEditCents int64
	IsGlobal       bool
	OrganizationID *uint
}

type CreateDomainResult struct {
	DomainID uint `json:"domain_id"`
}

type CreateDomainUseCase struct {
	domainRepo inventory.Repository
	policy     *authorization.ResourcePolicy
	logger     logger.Interface
}

func NewCreateDomainUseCase(
	domainRepo inventory.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *CreateDomainUseCase {
	return &CreateDomainUseCase{
		domainRepo: domainRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *CreateDomainUseCase) Execute(ctx context.Context, cmd CreateDomainCommand) (*CreateDomainResult, error) {
	if !uc.policy.CanManageInventory(cmd.Actor) {
		return nil, errors.NewForbiddenError("you cannot manage inventory")
	}

	d, err := inventory.NewDomain(cmd.Name, cmd.GuestPostCents, cmd.NicheEditCents, cmd.IsGlobal, cmd.OrganizationID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if existing, err := uc.domainRepo.FindByName(ctx, d.Name()); err == nil && existing != nil {
		return nil, errors.NewConflictError("domain is already in the inventory")
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	if cmd.Category != "" || cmd.Language != "" {
		var category, language *string
		if cmd.Category != "" {
			category = &cmd.Category
		}
		if cmd.Language != "" {
			language = &cmd.Language
		}
		d.UpdateMetadata(category, language)
	}

	if err := uc.domainRepo.Create(ctx, d); err != nil {
		uc.logger.Errorw("failed to create domain", "name", d.Name(), "error", err)
		return nil, err
	}

	uc.logger.Infow("domain added to inventory",
		"domain_id", d.ID(), "name", d.Name(), "global", d.IsGlobal(), "actor_id", cmd.Actor.UserID)

	return &CreateDomainResult{DomainID: d.ID()}, nil
}
