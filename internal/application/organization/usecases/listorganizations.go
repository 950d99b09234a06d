package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/organization/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ListOrganizationsQuery struct {
	Actor  authorization.Actor
	Offset int
	Limit  int
}

type ListOrganizationsResult struct {
	Organizations []*dto.OrganizationDTO `json:"organizations"`
	Total         int64                  `json:"total"`
}

type ListOrganizationsUseCase struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewListOrganizationsUseCase(orgRepo organization.Repository, logger logger.Interface) *ListOrganizationsUseCase {
	return &ListOrganizationsUseCase{
		orgRepo: orgRepo,
		logger:  logger,
	}
}

func (uc *ListOrganizationsUseCase) Execute(ctx context.Context, query ListOrganizationsQuery) (*ListOrganizationsResult, error) {
	if !query.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can list organizations")
	}

	orgs, total, err := uc.orgRepo.List(ctx, query.Offset, query.Limit)
	if err != nil {
		return nil, err
	}

	return &ListOrganizationsResult{
		Organizations: dto.ToOrganizationDTOs(orgs),
		Total:         total,
	}, nil
}
