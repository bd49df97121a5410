package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub tracks the plateau displays connected to each room code and
// pushes every state change to all of them.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(code string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[code] == nil {
		h.rooms[code] = make(map[*websocket.Conn]bool)
	}
	h.rooms[code][conn] = true
	logrus.WithField("room", code).WithField("total", len(h.rooms[code])).Info("ws: display connected")
}

func (h *Hub) RemoveConnection(code string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.rooms[code]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.rooms, code)
		}
		logrus.WithField("room", code).Info("ws: display disconnected")
	}
}

// Count reports how many displays are connected to the room.
func (h *Hub) Count(code string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[code])
}

func (h *Hub) Broadcast(code string, message WSMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.rooms[code]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		logrus.WithError(err).Error("ws: marshal error")
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			logrus.WithError(err).Warn("ws: write error")
			conn.Close()
			delete(conns, conn)
		}
	}
}
