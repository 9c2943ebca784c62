package canvas

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// refreshEvent is the JSON pushed to subscribed canvases.
type refreshEvent struct {
	Event       string `json:"event"`
	DashboardID string `json:"dashboard_id"`
}

// wsConn is the write side of a websocket connection.
type wsConn interface {
	WriteMessage(messageType int, data []byte) error
}

// subscriber serializes writes to one connection. The websocket contract
// allows a single concurrent writer per connection, and broadcasts arrive
// from arbitrary goroutines (fiber handlers, the saver's flush timer).
type subscriber struct {
	mu   sync.Mutex
	conn wsConn
}

func (s *subscriber) send(messageType int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(messageType, data)
}

// Hub tracks websocket subscribers per dashboard so other open tabs can
// reload after a widget or layout change. Delivery is best effort; a tab
// that misses an event simply keeps its stale view until the next reload.
type Hub struct {
	mu     sync.RWMutex
	conns  map[string]map[*subscriber]bool
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		conns:  make(map[string]map[*subscriber]bool),
		logger: logger,
	}
}

func (h *Hub) register(dashboardID string, conn wsConn) *subscriber {
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	if h.conns[dashboardID] == nil {
		h.conns[dashboardID] = make(map[*subscriber]bool)
	}
	h.conns[dashboardID][sub] = true
	h.mu.Unlock()

	return sub
}

func (h *Hub) unregister(dashboardID string, sub *subscriber) {
	h.mu.Lock()
	delete(h.conns[dashboardID], sub)
	if len(h.conns[dashboardID]) == 0 {
		delete(h.conns, dashboardID)
	}
	h.mu.Unlock()
}

// HandleConnection registers the connection under its dashboard id and
// blocks reading until the client goes away. Inbound messages are ignored,
// the socket is push-only.
func (h *Hub) HandleConnection(c *websocket.Conn) {
	dashboardID := c.Params("id")
	sub := h.register(dashboardID, c)

	defer func() {
		h.unregister(dashboardID, sub)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastRefresh pushes an event to every subscriber of the dashboard.
func (h *Hub) BroadcastRefresh(dashboardID string, event string) {
	payload, err := json.Marshal(refreshEvent{Event: event, DashboardID: dashboardID})
	if err != nil {
		return
	}

	h.mu.RLock()
	subscribers := make([]*subscriber, 0, len(h.conns[dashboardID]))
	for sub := range h.conns[dashboardID] {
		subscribers = append(subscribers, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subscribers {
		if err := sub.send(websocket.TextMessage, payload); err != nil {
			h.logger.Debug("refresh broadcast failed",
				zap.String("dashboard_id", dashboardID),
				zap.Error(err))
		}
	}
}
