package handlers

import (
	"net/http"

	"flagfootball-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler serves public player pages
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// GetPlayer handles GET /players/:id
// @Summary Public player page
// @Description The page a scanned code opens: player, team, games attended and stat totals
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} Response{data=service.PublicPlayerResponse}
// @Failure 400 {object} ErrorResponse "Invalid player id"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	player, err := h.playerService.GetPublicPlayer(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "", player)
}
