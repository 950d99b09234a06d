package realtime

import (
	"encoding/json"
	"sync"

	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

const (
	// PingInterval and PongWait are seconds, used for the heartbeat.
	PingInterval = 30
	PongWait     = 60
)

// WSMessage is the websocket message envelope.
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Publisher pushes an event to every connection a user holds, on this
// instance and, through redis, on every other one. Use cases depend on
// this interface so tests can capture pushes without a hub.
type Publisher interface {
	PushToUser(userID uint, event string, payload interface{})
}

// RedisBridge carries events between instances.
type RedisBridge interface {
	Publish(userID uint, event string, payload []byte) error
	Subscribe(handler func(userID uint, event string, payload []byte)) (cancel func(), err error)
}

// Hub maintains userID -> set of connections. A user may hold several
// connections (multiple tabs); every one receives each push.
type Hub struct {
	users  map[uint]map[string]*Client
	mu     sync.RWMutex
	log    logger.Interface
	bridge RedisBridge
	cancel func()
}

func NewHub(log logger.Interface, bridge RedisBridge) *Hub {
	return &Hub{
		users:  make(map[uint]map[string]*Client),
		log:    log,
		bridge: bridge,
	}
}

// Start subscribes to the cross-instance channel. Events arriving from
// other instances are delivered to local connections only; they are not
// re-published.
func (h *Hub) Start() error {
	if h.bridge == nil {
		return nil
	}
	cancel, err := h.bridge.Subscribe(func(userID uint, event string, payload []byte) {
		h.deliverLocal(userID, event, json.RawMessage(payload))
	})
	if err != nil {
		return err
	}
	h.cancel = cancel
	return nil
}

func (h *Hub) Stop() {
	if h.cancel != nil {
		h.cancel()
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.users[c.UserID] == nil {
		h.users[c.UserID] = make(map[string]*Client)
	}
	h.users[c.UserID][c.ID] = c
	h.mu.Unlock()
	h.log.Debugw("websocket client connected", "client_id", c.ID, "user_id", c.UserID)
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if m, ok := h.users[c.UserID]; ok {
		delete(m, c.ID)
		if len(m) == 0 {
			delete(h.users, c.UserID)
		}
	}
	h.mu.Unlock()
	h.log.Debugw("websocket client disconnected", "client_id", c.ID, "user_id", c.UserID)
}

// PushToUser delivers locally and publishes to redis so other instances
// reach the user's remaining connections. A user with no connection
// anywhere simply misses the push; the notification row is still in the
// database.
func (h *Hub) PushToUser(userID uint, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Warnw("failed to marshal websocket payload", "event", event, "error", err)
		return
	}
	h.deliverLocal(userID, event, data)
	if h.bridge != nil {
		if err := h.bridge.Publish(userID, event, data); err != nil {
			h.log.Warnw("failed to publish websocket event", "event", event, "error", err)
		}
	}
}

// ConnectionCount returns the number of local connections a user holds.
func (h *Hub) ConnectionCount(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}

func (h *Hub) deliverLocal(userID uint, event string, data []byte) {
	msg := WSMessage{Event: event, Data: data}

	// Copy the connection set under the lock; ranging the live map would
	// race with Register/Unregister on other goroutines.
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.users[userID]))
	for _, c := range h.users[userID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- msg:
		default:
			// buffer full, drop rather than block the hub
		}
	}
}
