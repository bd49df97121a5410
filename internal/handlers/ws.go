package handlers

import (
	"net/http"
	"strings"

	"github.com/neo-rakk/smala/internal/services"
	"github.com/neo-rakk/smala/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type WSHandler struct {
	hub         *ws.Hub
	gameService *services.GameService
	roomCode    string
}

func NewWSHandler(hub *ws.Hub, gameService *services.GameService, roomCode string) *WSHandler {
	return &WSHandler{hub: hub, gameService: gameService, roomCode: roomCode}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleRoomWebSocket godoc
// @Summary      WebSocket feed of room state
// @Description  Connect to receive the current room snapshot followed by every state change
// @Tags         websocket
// @Param        code path string true "Room code"
// @Router       /ws/room/{code} [get]
func (h *WSHandler) HandleRoomWebSocket(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))
	if code != h.roomCode {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown room"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("websocket upgrade error")
		return
	}

	// Snapshot so a display joining mid-show is immediately in sync.
	// Written before the conn joins the hub: the hub broadcasts from the
	// dispatching goroutine as soon as the conn is registered, and a
	// websocket.Conn supports only one concurrent writer.
	if room, err := h.gameService.GetState(); err == nil && room != nil {
		if err := conn.WriteJSON(ws.WSMessage{Type: "room_update", Data: room}); err != nil {
			conn.Close()
			return
		}
	}

	h.hub.AddConnection(code, conn)
	defer h.hub.RemoveConnection(code, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
