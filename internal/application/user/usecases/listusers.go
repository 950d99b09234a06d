package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/user/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ListUsersQuery struct {
	Actor          authorization.Actor
	Role           string
	OrganizationID uint
	ActiveOnly     bool
	Search         string
	Offset         int
	Limit          int
}

type ListUsersResult struct {
	Users []*dto.UserDTO `json:"users"`
	Total int64          `json:"total"`
}

// ListUsersUseCase is the staff directory listing. User managers browse
// through ListManagedUsers instead.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if !query.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can list users")
	}

	filter := user.ListFilter{
		Role:           authorization.Role(query.Role),
		OrganizationID: query.OrganizationID,
		ActiveOnly:     query.ActiveOnly,
		Search:         query.Search,
	}

	users, total, err := uc.userRepo.List(ctx, filter, query.Offset, query.Limit)
	if err != nil {
		return nil, err
	}

	return &ListUsersResult{
		Users: dto.ToUserDTOs(users),
		Total: total,
	}, nil
}
