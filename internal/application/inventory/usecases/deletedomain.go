package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type DeleteDomainCommand struct {
	Actor    authorization.Actor
	DomainID uint
}

type DeleteDomainUseCase struct {
	domainRepo inventory.Repository
	policy     *authorization.ResourcePolicy
	logger     logger.Interface
}

func NewDeleteDomainUseCase(
	domainRepo inventory.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *DeleteDomainUseCase {
	return &DeleteDomainUseCase{
		domainRepo: domainRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *DeleteDomainUseCase) Execute(ctx context.Context, cmd DeleteDomainCommand) error {
	if !uc.policy.CanDelete(cmd.Actor) {
		return errors.NewForbiddenError("only admins can delete domains")
	}

	if err := uc.domainRepo.Delete(ctx, cmd.DomainID); err != nil {
		uc.logger.Errorw("failed to delete domain", "domain_id", cmd.DomainID, "error", err)
		return err
	}

	uc.logger.Infow("domain deleted", "domain_id", cmd.DomainID, "actor_id", cmd.Actor.UserID)
	return nil
}
