package usecases

import (
	"context"
	"fmt"

	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/domain/ticket"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type SummaryQuery struct {
	Actor authorization.Actor
}

type SummaryResult struct {
	OrdersByStatus     map[string]int64 `json:"orders_by_status"`
	TicketsByStatus    map[string]int64 `json:"tickets_by_status"`
	OutstandingCents   int64            `json:"outstanding_cents"`
	OrganizationOrders int64            `json:"organization_orders"`
	PricingTier        string           `json:"pricing_tier"`
}

// SummaryUseCase aggregates the landing-page counters. Every count is
// scoped the same way the corresponding list endpoint is: admins see
// global numbers, managers their roster's, users their own.
type SummaryUseCase struct {
	orderRepo      order.Repository
	ticketRepo     ticket.Repository
	invoiceRepo    invoice.Repository
	orgRepo        organization.Repository
	assignmentRepo user.AssignmentRepository
	logger         logger.Interface
}

func NewSummaryUseCase(
	orderRepo order.Repository,
	ticketRepo ticket.Repository,
	invoiceRepo invoice.Repository,
	orgRepo organization.Repository,
	assignmentRepo user.AssignmentRepository,
	logger logger.Interface,
) *SummaryUseCase {
	return &SummaryUseCase{
		orderRepo:      orderRepo,
		ticketRepo:     ticketRepo,
		invoiceRepo:    invoiceRepo,
		orgRepo:        orgRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *SummaryUseCase) Execute(ctx context.Context, query SummaryQuery) (*SummaryResult, error) {
	actor := query.Actor

	var visibleUserIDs []uint
	if actor.Role == authorization.RoleUserManager {
		managed, err := uc.assignmentRepo.ManagedUserIDs(ctx, actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve managed users: %w", err)
		}
		visibleUserIDs = append(managed, actor.UserID)
	}

	orderFilter := order.ListFilter{}
	ticketFilter := ticket.ListFilter{}
	invoiceFilter := invoice.ListFilter{Status: invoice.StatusPending}
	switch {
	case actor.Role.IsAdmin():
		// Unscoped.
	case actor.Role == authorization.RoleUserManager:
		orderFilter.UserIDs = visibleUserIDs
		ticketFilter.UserIDs = visibleUserIDs
		invoiceFilter.UserIDs = visibleUserIDs
	default:
		orderFilter.UserID = actor.UserID
		ticketFilter.UserID = actor.UserID
		invoiceFilter.UserID = actor.UserID
	}

	ordersByStatus, err := uc.orderRepo.CountByStatus(ctx, orderFilter)
	if err != nil {
		return nil, err
	}
	ticketsByStatus, err := uc.ticketRepo.CountByStatus(ctx, ticketFilter)
	if err != nil {
		return nil, err
	}
	outstanding, err := uc.invoiceRepo.SumAmountCents(ctx, invoiceFilter)
	if err != nil {
		return nil, err
	}

	result := &SummaryResult{
		OrdersByStatus:  make(map[string]int64, len(ordersByStatus)),
		TicketsByStatus: make(map[string]int64, len(ticketsByStatus)),
	}
	for s, n := range ordersByStatus {
		result.OrdersByStatus[string(s)] = n
	}
	for s, n := range ticketsByStatus {
		result.TicketsByStatus[string(s)] = n
	}
	result.OutstandingCents = outstanding

	if actor.OrganizationID != 0 {
		org, err := uc.orgRepo.FindByID(ctx, actor.OrganizationID)
		if err != nil {
			uc.logger.Warnw("failed to load organization for summary",
				"organization_id", actor.OrganizationID, "error", err)
		} else {
			result.OrganizationOrders = org.OrdersCount()
			result.PricingTier = string(org.PricingTier())
		}
	}

	return result, nil
}
