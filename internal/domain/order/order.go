package order

import (
	"fmt"
	"time"
)

// Order is a single placement request against the domain inventory.
type Order struct {
	id             uint
	userID         uint
	organizationID uint
	domainID       *uint
	orderType      OrderType
	status         Status
	anchorText     string
	targetURL      string
	contentTitle   string
	contentBody    string
	notes          string
	priceCents     int64
	assignedTo     *uint
	dateOrdered    time.Time
	dateCompleted  *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewOrder(
	userID uint,
	organizationID uint,
	domainID *uint,
	orderType OrderType,
	anchorText string,
	targetURL string,
	priceCents int64,
) (*Order, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if !orderType.IsValid() {
		return nil, fmt.Errorf("invalid order type: %s", orderType)
	}
	if targetURL == "" {
		return nil, fmt.Errorf("target URL is required")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	now := time.Now()
	return &Order{
		userID:         userID,
		organizationID: organizationID,
		domainID:       domainID,
		orderType:      orderType,
		status:         InitialStatus(orderType),
		anchorText:     anchorText,
		targetURL:      targetURL,
		priceCents:     priceCents,
		dateOrdered:    now,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructOrder(
	id uint,
	userID uint,
	organizationID uint,
	domainID *uint,
	orderType OrderType,
	status Status,
	anchorText string,
	targetURL string,
	contentTitle string,
	contentBody string,
	notes string,
	priceCents int64,
	assignedTo *uint,
	dateOrdered time.Time,
	dateCompleted *time.Time,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !orderType.IsValid() {
		return nil, fmt.Errorf("invalid order type: %s", orderType)
	}
	if !status.IsValidFor(orderType) {
		return nil, fmt.Errorf("status %q is not valid for order type %s", status, orderType)
	}

	return &Order{
		id:             id,
		userID:         userID,
		organizationID: organizationID,
		domainID:       domainID,
		orderType:      orderType,
		status:         status,
		anchorText:     anchorText,
		targetURL:      targetURL,
		contentTitle:   contentTitle,
		contentBody:    contentBody,
		notes:          notes,
		priceCents:     priceCents,
		assignedTo:     assignedTo,
		dateOrdered:    dateOrdered,
		dateCompleted:  dateCompleted,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (o *Order) ID() uint                  { return o.id }
func (o *Order) UserID() uint              { return o.userID }
func (o *Order) OrganizationID() uint      { return o.organizationID }
func (o *Order) DomainID() *uint           { return o.domainID }
func (o *Order) Type() OrderType           { return o.orderType }
func (o *Order) Status() Status            { return o.status }
func (o *Order) AnchorText() string        { return o.anchorText }
func (o *Order) TargetURL() string         { return o.targetURL }
func (o *Order) ContentTitle() string      { return o.contentTitle }
func (o *Order) ContentBody() string       { return o.contentBody }
func (o *Order) Notes() string             { return o.notes }
func (o *Order) PriceCents() int64         { return o.priceCents }
func (o *Order) AssignedTo() *uint         { return o.assignedTo }
func (o *Order) DateOrdered() time.Time    { return o.dateOrdered }
func (o *Order) DateCompleted() *time.Time { return o.dateCompleted }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }

func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

// ChangeStatus sets any status within the type's vocabulary. Reaching the
// completed status stamps dateCompleted once; there is intentionally no
// guard against later reverting the status while keeping the stamp.
func (o *Order) ChangeStatus(newStatus Status) error {
	if !newStatus.IsValidFor(o.orderType) {
		return fmt.Errorf("status %q is not valid for order type %s", newStatus, o.orderType)
	}

	o.status = newStatus
	o.updatedAt = time.Now()

	if newStatus.IsCompleted() && o.dateCompleted == nil {
		now := time.Now()
		o.dateCompleted = &now
	}

	return nil
}

// Assign routes the order to a staff user.
func (o *Order) Assign(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	o.assignedTo = &assigneeID
	o.updatedAt = time.Now()
	return nil
}

// SetDateCompleted overwrites the completion stamp. Admin-only callers use
// this through the projected update path.
func (o *Order) SetDateCompleted(at *time.Time) {
	o.dateCompleted = at
	o.updatedAt = time.Now()
}

// UpdateDetails applies the content fields of a projected update. Nil
// pointers leave the current value untouched.
func (o *Order) UpdateDetails(anchorText, targetURL, contentTitle, contentBody, notes *string) {
	if anchorText != nil {
		o.anchorText = *anchorText
	}
	if targetURL != nil {
		o.targetURL = *targetURL
	}
	if contentTitle != nil {
		o.contentTitle = *contentTitle
	}
	if contentBody != nil {
		o.contentBody = *contentBody
	}
	if notes != nil {
		o.notes = *notes
	}
	o.updatedAt = time.Now()
}
