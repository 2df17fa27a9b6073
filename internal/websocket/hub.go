package websocket

import (
	"log/slog"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/anonymity12/habitplanet/pkg/entity"
)

// Hub fans events out to every connection a user has open.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[uuid.UUID]map[*Client]struct{}),
		logger:  logger,
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	set, ok := h.clients[c.uid]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.uid] = set
	}
	set[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes the client and closes its send channel. Safe to call twice.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.uid]
	if !ok {
		return
	}
	if _, ok = set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.uid)
	}
}

// Notify never blocks, a client with a full buffer misses the event.
func (h *Hub) Notify(uid uuid.UUID, event entity.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	set := h.clients[uid]
	if len(set) == 0 {
		return
	}
	data, err := sonic.Marshal(event)
	if err != nil {
		h.logger.Error("marshal event", slog.String("type", string(event.Type)), slog.String("error", err.Error()))
		return
	}
	for c := range set {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("client buffer full, event dropped",
				slog.String("uid", uid.String()),
				slog.String("type", string(event.Type)),
			)
		}
	}
}

func (h *Hub) ClientCount(uid uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[uid])
}
