package usecases

import (
	"context"
	"time"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type CreateOrderCommand struct {
	Actor      authorization.Actor
	DomainID   *uint
	OrderType  string
	AnchorText string
	TargetURL  string
	Notes      string
}

type CreateOrderResult struct {
	OrderID     uint      `json:"order_id"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
	DateOrdered time.Time `json:"date_ordered"`
}

type CreateOrderUseCase struct {
	orderRepo  order.Repository
	domainRepo inventory.Repository
	orgRepo    organization.Repository
	userRepo   user.Repository
	outboxRepo outbox.Repository
	logger     logger.Interface
}

func NewCreateOrderUseCase(
	orderRepo order.Repository,
	domainRepo inventory.Repository,
	orgRepo organization.Repository,
	userRepo user.Repository,
	outboxRepo outbox.Repository,
	logger logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:  orderRepo,
		domainRepo: domainRepo,
		orgRepo:    orgRepo,
		userRepo:   userRepo,
		outboxRepo: outboxRepo,
		logger:     logger,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	uc.logger.Infow("executing create order use case",
		"user_id", cmd.Actor.UserID, "order_type", cmd.OrderType)

	orderType := order.OrderType(cmd.OrderType)
	if !orderType.IsValid() {
		return nil, errors.NewValidationError("invalid order type")
	}
	if cmd.TargetURL == "" {
		return nil, errors.NewValidationError("target URL is required")
	}

	priceCents, err := uc.resolvePrice(ctx, cmd.Actor, cmd.DomainID, orderType)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.Actor.UserID,
		cmd.Actor.OrganizationID,
		cmd.DomainID,
		orderType,
		cmd.AnchorText,
		cmd.TargetURL,
		priceCents,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Notes != "" {
		notes := cmd.Notes
		newOrder.UpdateDetails(nil, nil, nil, nil, &notes)
	}

	if err := uc.orderRepo.Create(ctx, newOrder); err != nil {
		uc.logger.Errorw("failed to create order", "error", err)
		return nil, err
	}

	// The counter is denormalized for the dashboard; a failed bump never
	// fails the order.
	if err := uc.orgRepo.IncrementOrdersCount(ctx, cmd.Actor.OrganizationID); err != nil {
		uc.logger.Warnw("failed to increment organization order counter",
			"organization_id", cmd.Actor.OrganizationID, "error", err)
	}

	uc.enqueueCreated(ctx, newOrder)

	uc.logger.Infow("order created",
		"order_id", newOrder.ID(), "price_cents", newOrder.PriceCents())

	return &CreateOrderResult{
		OrderID:     newOrder.ID(),
		Status:      string(newOrder.Status()),
		PriceCents:  newOrder.PriceCents(),
		DateOrdered: newOrder.DateOrdered(),
	}, nil
}

// resolvePrice quotes the order from the selected inventory domain and the
// organization's pricing tier. Orders without a domain are priced manually
// later and start at zero.
func (uc *CreateOrderUseCase) resolvePrice(
	ctx context.Context,
	actor authorization.Actor,
	domainID *uint,
	orderType order.OrderType,
) (int64, error) {
	if domainID == nil {
		return 0, nil
	}

	d, err := uc.domainRepo.FindByID(ctx, *domainID)
	if err != nil {
		return 0, err
	}
	if !d.VisibleTo(actor.OrganizationID) {
		return 0, errors.NewForbiddenError("domain is not available to your organization")
	}

	listPrice, err := d.PriceFor(orderType)
	if err != nil {
		return 0, errors.NewValidationError(err.Error())
	}

	org, err := uc.orgRepo.FindByID(ctx, actor.OrganizationID)
	if err != nil {
		return 0, err
	}
	return org.ApplyDiscount(listPrice), nil
}

func (uc *CreateOrderUseCase) enqueueCreated(ctx context.Context, o *order.Order) {
	recipients, err := adminRecipients(ctx, uc.userRepo)
	if err != nil {
		uc.logger.Warnw("failed to resolve admin recipients", "error", err)
		return
	}

	enqueueEvent(ctx, uc.outboxRepo, uc.logger, outbox.TopicOrderCreated, outbox.OrderEventPayload{
		OrderID:    o.ID(),
		Reference:  orderRef(o.ID()),
		OrderType:  string(o.Type()),
		Status:     string(o.Status()),
		Recipients: recipients,
	})
}
