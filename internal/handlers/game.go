package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/neo-rakk/smala/internal/services"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

type GameHandler struct {
	gameService *services.GameService
	joinURL     string
}

func NewGameHandler(gameService *services.GameService, joinURL string) *GameHandler {
	return &GameHandler{gameService: gameService, joinURL: joinURL}
}

type DispatchRequest struct {
	Type    string          `json:"type" binding:"required" example:"REVEAL_ANSWER"`
	Payload json.RawMessage `json:"payload"`
}

// GetState godoc
// @Summary      Current room state
// @Description  Returns the shared game room, or 204 when no game is running
// @Tags         game
// @Produce      json
// @Success      200 {object} game.Room
// @Success      204
// @Router       /api/v1/game/state [get]
func (h *GameHandler) GetState(c *gin.Context) {
	room, err := h.gameService.GetState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if room == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DispatchAction godoc
// @Summary      Dispatch a régie action
// @Description  Applies one game action to the shared room and persists the result. Unknown action types are accepted and leave the state unchanged.
// @Tags         game
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body DispatchRequest true "Action"
// @Success      200 {object} game.Room
// @Success      204 "game was reset"
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/game/actions [post]
func (h *GameHandler) DispatchAction(c *gin.Context) {
	var req DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.gameService.DispatchRaw(req.Type, req.Payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if room == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, room)
}

// JoinQR godoc
// @Summary      Join QR code
// @Description  PNG QR code of the public join URL, for the plateau display
// @Tags         game
// @Produce      png
// @Param        size query int false "Image size in pixels" default(256)
// @Success      200 {string} binary "PNG image"
// @Router       /api/v1/game/qr [get]
func (h *GameHandler) JoinQR(c *gin.Context) {
	size := 256
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v >= 64 && v <= 2048 {
		size = v
	}

	png, err := qrcode.Encode(h.joinURL, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
