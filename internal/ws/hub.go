package ws

import (
	"sync"

	"github.com/gofiber/websocket/v2"

	"chipledger/internal/monitoring"
)

// Hub keeps one room per game code. Clients only receive; every inbound
// mutation goes through the HTTP API.
type Hub struct {
	rooms map[string]map[*websocket.Conn]bool
	mu    sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Broadcast(code string, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.rooms[code] {
		c.WriteMessage(websocket.TextMessage, data)
	}
}

func (h *Hub) Handler(c *websocket.Conn) {
	code := c.Params("code")

	h.mu.Lock()
	if h.rooms[code] == nil {
		h.rooms[code] = make(map[*websocket.Conn]bool)
	}
	h.rooms[code][c] = true
	h.mu.Unlock()
	monitoring.WSClients.Inc()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[code], c)
		if len(h.rooms[code]) == 0 {
			delete(h.rooms, code)
		}
		h.mu.Unlock()
		monitoring.WSClients.Dec()
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
