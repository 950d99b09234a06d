package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

// enqueueEvent queues a fan-out message. Failures are logged rather than
// returned: the feedback rows have already committed.
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
