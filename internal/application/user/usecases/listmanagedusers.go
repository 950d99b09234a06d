package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/user/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ListManagedUsersQuery struct {
	Actor     authorization.Actor
	ManagerID uint
}

type ListManagedUsersResult struct {
	Users []*dto.UserDTO `json:"users"`
}

// ListManagedUsersUseCase returns the customers behind a manager's active
// assignments. Managers may only look at their own roster.
type ListManagedUsersUseCase struct {
	userRepo       user.Repository
	assignmentRepo user.AssignmentRepository
	logger         logger.Interface
}

func NewListManagedUsersUseCase(
	userRepo user.Repository,
	assignmentRepo user.AssignmentRepository,
	logger logger.Interface,
) *ListManagedUsersUseCase {
	return &ListManagedUsersUseCase{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListManagedUsersUseCase) Execute(ctx context.Context, query ListManagedUsersQuery) (*ListManagedUsersResult, error) {
	managerID := query.ManagerID
	if managerID == 0 {
		managerID = query.Actor.UserID
	}
	if managerID != query.Actor.UserID && !query.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("you can only list your own managed users")
	}

	assignments, err := uc.assignmentRepo.ListActiveByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(assignments))
	for _, a := range assignments {
		u, err := uc.userRepo.FindByID(ctx, a.UserID())
		if err != nil {
			if errors.IsNotFoundError(err) {
				uc.logger.Warnw("assignment points at missing user",
					"manager_id", managerID, "user_id", a.UserID())
				continue
			}
			return nil, err
		}
		users = append(users, u)
	}

	return &ListManagedUsersResult{Users: dto.ToUserDTOs(users)}, nil
}
