package usecases

import (
	"context"
	"fmt"

	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

// scopeFilter narrows an invoice list filter to what the actor may see:
// admins see everything, user managers see themselves plus their managed
// users, everyone else sees only their own invoices.
func scopeFilter(
	ctx context.Context,
	actor authorization.Actor,
	assignments user.AssignmentRepository,
	filter invoice.ListFilter,
) (invoice.ListFilter, error) {
	if actor.Role.IsAdmin() {
		return filter, nil
	}

	if actor.Role == authorization.RoleUserManager {
		managed, err := assignments.ManagedUserIDs(ctx, actor.UserID)
		if err != nil {
			return filter, fmt.Errorf("failed to resolve managed users: %w", err)
		}
		visible := append(managed, actor.UserID)

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

func recipientFor(u *user.User) outbox.Recipient {
	return outbox.Recipient{UserID: u.ID(), Email: u.Email(), Name: u.Name()}
}

// enqueueEvent queues a fan-out message. Failures are logged rather than
// returned: the invoice write has already committed.
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
