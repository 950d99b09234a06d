package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/organization/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type GetOrganizationQuery struct {
	Actor          authorization.Actor
	OrganizationID uint
}

// GetOrganizationUseCase returns one organization. Non-admins may only
// read their own.
type GetOrganizationUseCase struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewGetOrganizationUseCase(orgRepo organization.Repository, logger logger.Interface) *GetOrganizationUseCase {
	return &GetOrganizationUseCase{
		orgRepo: orgRepo,
		logger:  logger,
	}
}

func (uc *GetOrganizationUseCase) Execute(ctx context.Context, query GetOrganizationQuery) (*dto.OrganizationDTO, error) {
	if !query.Actor.Role.IsAdmin() && query.Actor.OrganizationID != query.OrganizationID {
		return nil, errors.NewForbiddenError("you do not have access to this organization")
	}

	org, err := uc.orgRepo.FindByID(ctx, query.OrganizationID)
	if err != nil {
		return nil, err
	}

	return dto.ToOrganizationDTO(org), nil
}
