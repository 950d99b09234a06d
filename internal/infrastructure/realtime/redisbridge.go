package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/linkdesk-io/linkdesk/internal/shared/goroutine"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

const notificationChannel = "linkdesk:notifications"

type bridgeEnvelope struct {
	UserID  uint            `json:"user_id"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// RedisNotificationBridge fans websocket events out across instances over
// a single pub/sub channel.
type RedisNotificationBridge struct {
	client *redis.Client
	log    logger.Interface
}

func NewRedisNotificationBridge(client *redis.Client, log logger.Interface) *RedisNotificationBridge {
	return &RedisNotificationBridge{client: client, log: log}
}

func (b *RedisNotificationBridge) Publish(userID uint, event string, payload []byte) error {
	data, err := json.Marshal(bridgeEnvelope{UserID: userID, Event: event, Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal bridge envelope: %w", err)
	}
	if err := b.client.Publish(context.Background(), notificationChannel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event: %w", err)
	}
	return nil
}

func (b *RedisNotificationBridge) Subscribe(handler func(userID uint, event string, payload []byte)) (func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := b.client.Subscribe(ctx, notificationChannel)

	// Force the subscription to be established before returning.
	if _, err := sub.Receive(ctx); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", notificationChannel, err)
	}

	goroutine.SafeGo(b.log, "realtime.redis_subscriber", func() {
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var env bridgeEnvelope
				if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
					b.log.Warnw("malformed notification envelope", "error", err)
					continue
				}
				handler(env.UserID, env.Event, env.Payload)
			}
		}
	})

	return func() {
		cancel()
		_ = sub.Close()
	}, nil
}
