package handlers

import (
	"net/http"

	"flagfootball-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team listings
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /teams
// @Summary List teams
// @Tags teams
// @Produce json
// @Param coach_id query int false "Only teams coached by this user"
// @Success 200 {object} Response{data=[]service.TeamResponse}
// @Failure 400 {object} ErrorResponse "Invalid coach id"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	coachID, err := optionalID(c.Query("coach_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	teams, err := h.teamService.List(coachID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "", teams)
}
