package handlers

import (
	"net/http"

	"flagfootball-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GameHandler handles game listings and attendance sheets
type GameHandler struct {
	gameService service.GameServiceInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService service.GameServiceInterface) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// ListGames handles GET /games
// @Summary List games
// @Description Games ordered by date
// @Tags games
// @Produce json
// @Param status query string false "scheduled, in_progress, finished or cancelled"
// @Success 200 {object} Response{data=[]service.GameSummary}
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Router /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.gameService.List(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", games)
}

// GetAttendance handles GET /games/:id/attendance
// @Summary Game attendance
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} Response{data=[]service.AttendanceResponse}
// @Failure 400 {object} ErrorResponse "Invalid game id"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id}/attendance [get]
func (h *GameHandler) GetAttendance(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := h.gameService.GetAttendance(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", records)
}
