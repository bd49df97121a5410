package handlers

import (
	"net/http"
	"strconv"

	"github.com/neo-rakk/smala/internal/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// List godoc
// @Summary      Leaderboard
// @Description  All recorded matches, best score first
// @Tags         leaderboard
// @Produce      json
// @Success      200 {array} models.LeaderboardEntry
// @Router       /api/v1/leaderboard [get]
func (h *LeaderboardHandler) List(c *gin.Context) {
	entries, err := h.leaderboardService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Delete godoc
// @Summary      Delete a leaderboard entry
// @Tags         leaderboard
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Entry ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/leaderboard/{id} [delete]
func (h *LeaderboardHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid entry id"})
		return
	}
	if err := h.leaderboardService.Delete(uint(id)); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "entry deleted"})
}
