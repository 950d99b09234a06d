package usecases

import (
	"context"
	"fmt"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

// orderRef is the human-facing order reference used in notifications and
// system comments.
func orderRef(id uint) string {
	return fmt.Sprintf("#%d", id)
}

// scopeFilter narrows an order list filter to what the actor may see:
// admins see everything, user managers see themselves plus their managed
// users, everyone else sees only their own orders.
func scopeFilter(
	ctx context.Context,
	actor authorization.Actor,
	assignments user.AssignmentRepository,
	filter order.ListFilter,
) (order.ListFilter, error) {
	if actor.Role.IsAdmin() {
		return filter, nil
	}

	if actor.Role == authorization.RoleUserManager {
		managed, err := assignments.ManagedUserIDs(ctx, actor.UserID)
		if err != nil {
			return filter, fmt.Errorf("failed to resolve managed users: %w", err)
		}
		visible := append(managed, actor.UserID)

		// A requested user filter survives only when it targets someone
		// inside the manager's scope.
		if filter.UserID != 0 {
			for _, id := range visible {
				if id == filter.UserID {
					return filter, nil
				}
			}
		}
		filter.UserID = 0
		filter.UserIDs = visible
		return filter, nil
	}

	filter.UserID = actor.UserID
	filter.UserIDs = nil
	return filter, nil
}

// adminRecipients resolves every active admin account into outbox
// recipients, for events that notify staff.
func adminRecipients(ctx context.Context, users user.Repository) ([]outbox.Recipient, error) {
	admins, _, err := users.List(ctx, user.ListFilter{
		Role:       authorization.RoleAdmin,
		ActiveOnly: true,
	}, 0, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	recipients := make([]outbox.Recipient, 0, len(admins))
	for _, a := range admins {
		recipients = append(recipients, outbox.Recipient{
			UserID: a.ID(),
			Email:  a.Email(),
			Name:   a.Name(),
		})
	}
	return recipients, nil
}

func recipientFor(u *user.User) outbox.Recipient {
	return outbox.Recipient{UserID: u.ID(), Email: u.Email(), Name: u.Name()}
}

// enqueueEvent queues a fan-out message. Failures are logged rather than
// returned: the business write has already committed and a lost
// notification is preferable to a rolled-back order.
func enqueueEvent(
	ctx context.Context,
	repo outbox.Repository,
	log logger.Interface,
	topic string,
	payload interface{},
) {
	msg, err := outbox.NewMessageJSON(topic, payload)
	if err != nil {
		log.Errorw("failed to build outbox message", "topic", topic, "error", err)
		return
	}
	if err := repo.Enqueue(ctx, msg); err != nil {
		log.Errorw("failed to enqueue outbox message", "topic", topic, "error", err)
	}
}
