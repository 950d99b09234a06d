package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/user/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type GetUserQuery struct {
	Actor  authorization.Actor
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.Repository
	policy   *authorization.ResourcePolicy
	logger   logger.Interface
}

func NewGetUserUseCase(
	userRepo user.Repository,
	policy *authorization.ResourcePolicy,
	logger logger.Interface,
) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		policy:   policy,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	allowed, err := uc.policy.CanAccessOwned(ctx, query.Actor, query.UserID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewForbiddenError("you do not have access to this user")
	}

	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	return dto.ToUserDTO(u), nil
}
