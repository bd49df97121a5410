package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/neo-rakk/smala/internal/game"
	"github.com/neo-rakk/smala/internal/models"
	"github.com/neo-rakk/smala/internal/services"
	"github.com/neo-rakk/smala/internal/store"
	"github.com/neo-rakk/smala/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wsFrame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type wsFixture struct {
	server  *httptest.Server
	service *services.GameService
	store   *store.MemoryStore
	hub     *ws.Hub
}

type noBoard struct{}

func (noBoard) Append(string, int) (*models.LeaderboardEntry, error) {
	return &models.LeaderboardEntry{}, nil
}

func newWSFixture(t *testing.T) *wsFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	reducer := game.NewReducerWith(func() bool { return true }, func() time.Time { return time.UnixMilli(1000) })
	svc := services.NewGameService(st, reducer, noBoard{}, "live-dz")

	hub := ws.NewHub()
	st.Subscribe("live-dz", func(doc *models.RoomDocument) {
		if doc == nil {
			hub.Broadcast(game.RoomCode, ws.WSMessage{Type: "room_reset", Data: nil})
			return
		}
		var room game.Room
		require.NoError(t, json.Unmarshal(doc.Payload, &room))
		hub.Broadcast(game.RoomCode, ws.WSMessage{Type: "room_update", Data: &room})
	})

	r := gin.New()
	r.GET("/ws/room/:code", NewWSHandler(hub, svc, game.RoomCode).HandleRoomWebSocket)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &wsFixture{server: server, service: svc, store: st, hub: hub}
}

// awaitRegistered blocks until the handler has handed the conn to the
// hub, so a subsequent dispatch is guaranteed to reach it.
func (f *wsFixture) awaitRegistered(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return f.hub.Count(game.RoomCode) == n
	}, 2*time.Second, 5*time.Millisecond)
}

func (f *wsFixture) dial(t *testing.T, code string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws/room/" + code
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) wsFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var frame wsFrame
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func TestRoomWebSocketSnapshotThenUpdates(t *testing.T) {
	f := newWSFixture(t)

	_, err := f.service.Dispatch(game.Init{})
	require.NoError(t, err)

	conn := f.dial(t, "live-dz")

	// First frame is always the snapshot, sent before the conn is
	// handed to the hub so the dispatch goroutine never shares a writer
	// with the handler.
	snapshot := readFrame(t, conn)
	assert.Equal(t, "room_update", snapshot.Type)
	var room game.Room
	require.NoError(t, json.Unmarshal(snapshot.Data, &room))
	assert.Equal(t, game.RoomCode, room.Code)
	assert.Equal(t, game.StateLobby, room.State)

	f.awaitRegistered(t, 1)
	_, err = f.service.Dispatch(game.StartGame{})
	require.NoError(t, err)

	update := readFrame(t, conn)
	assert.Equal(t, "room_update", update.Type)
	require.NoError(t, json.Unmarshal(update.Data, &room))
	assert.Equal(t, game.StateRound, room.State)
}

func TestRoomWebSocketNoSnapshotWhenNoGame(t *testing.T) {
	f := newWSFixture(t)

	conn := f.dial(t, "live-dz")
	f.awaitRegistered(t, 1)

	// Nothing stored yet: the first frame a display sees is the update
	// caused by the first dispatch, not a snapshot.
	_, err := f.service.Dispatch(game.Init{})
	require.NoError(t, err)

	frame := readFrame(t, conn)
	assert.Equal(t, "room_update", frame.Type)
}

func TestRoomWebSocketUnknownRoom(t *testing.T) {
	f := newWSFixture(t)

	resp, err := http.Get(f.server.URL + "/ws/room/AUTRE")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
