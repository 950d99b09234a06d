package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/application/order/dto"
	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type ListOrdersQuery struct {
	Actor     authorization.Actor
	OrderType string
	Status    string
	UserID    uint
	Offset    int
	Limit     int
}

type ListOrdersResult struct {
	Orders []*dto.OrderDTO `json:"orders"`
	Total  int64           `json:"total"`
}

type ListOrdersUseCase struct {
	orderRepo      order.Repository
	assignmentRepo user.AssignmentRepository
	logger         logger.Interface
}

func NewListOrdersUseCase(
	orderRepo order.Repository,
	assignmentRepo user.AssignmentRepository,
	logger logger.Interface,
) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo:      orderRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) (*ListOrdersResult, error) {
	filter := order.ListFilter{
		OrderType: order.OrderType(query.OrderType),
		Status:    order.Status(query.Status),
		UserID:    query.UserID,
	}

	filter, err := scopeFilter(ctx, query.Actor, uc.assignmentRepo, filter)
	if err != nil {
		uc.logger.Errorw("failed to scope order filter", "error", err)
		return nil, err
	}

	orders, total, err := uc.orderRepo.List(ctx, filter, query.Offset, query.Limit)
	if err != nil {
		return nil, err
	}

	return &ListOrdersResult{
		Orders: dto.ToOrderDTOs(orders),
		Total:  total,
	}, nil
}
