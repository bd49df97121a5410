package handlers

import (
	"net/http"

	"github.com/neo-rakk/smala/internal/game"
	"github.com/neo-rakk/smala/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlayHandler is the public surface for players: join the roster, leave
// it. Team assignment and captaincy stay with the régie.
type PlayHandler struct {
	gameService *services.GameService
}

func NewPlayHandler(gameService *services.GameService) *PlayHandler {
	return &PlayHandler{gameService: gameService}
}

type JoinRequest struct {
	Nickname string `json:"nickname" binding:"required,min=1,max=100" example:"Karim"`
}

type LeaveRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Join godoc
// @Summary      Join the show
// @Description  Adds a player to the roster with a fresh identity. Idempotent for an already-known id.
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        request body JoinRequest true "Join data"
// @Success      200 {object} game.User
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/play/join [post]
func (h *PlayHandler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user := game.User{
		ID:       uuid.NewString(),
		Nickname: req.Nickname,
		Team:     game.TeamNone,
	}
	if _, err := h.gameService.Dispatch(game.AddPlayer{User: user}); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Leave godoc
// @Summary      Leave the show
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        request body LeaveRequest true "Leave data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/play/leave [post]
func (h *PlayHandler) Leave(c *gin.Context) {
	var req LeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.gameService.Dispatch(game.RemovePlayer{UserID: req.UserID}); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "left"})
}
