package handlers

import (
	"net/http"
	"strings"

	"flagfootball-backend/internal/database/models"
	apperrors "flagfootball-backend/internal/errors"
	"flagfootball-backend/internal/repository"
	"flagfootball-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// JoinRequestHandler handles the join/transfer request workflow
type JoinRequestHandler struct {
	joinRequestService service.JoinRequestServiceInterface
}

// NewJoinRequestHandler creates a new join request handler
func NewJoinRequestHandler(joinRequestService service.JoinRequestServiceInterface) *JoinRequestHandler {
	return &JoinRequestHandler{joinRequestService: joinRequestService}
}

// ListJoinRequests handles GET /team-join-requests
// @Summary List join requests
// @Description Requests newest first, each with its target team. Filters combine. Without filters the caller's own requests are listed; team_id requires coaching the team.
// @Tags team-join-requests
// @Produce json
// @Param team_id query int false "Target team"
// @Param player_user_id query int false "Requesting user, must be the caller"
// @Param status query string false "pending, pending_coordinator, accepted or rejected"
// @Success 200 {object} Response{data=[]service.JoinRequestResponse}
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 403 {object} ErrorResponse "player_user_id is not the caller or the caller does not coach team_id"
// @Security BearerAuth
// @Router /team-join-requests [get]
func (h *JoinRequestHandler) ListJoinRequests(c *gin.Context) {
	var filter repository.JoinRequestFilter
	var err error

	if filter.TeamID, err = optionalID(c.Query("team_id")); err != nil {
		respondError(c, err)
		return
	}
	if filter.PlayerUserID, err = optionalID(c.Query("player_user_id")); err != nil {
		respondError(c, err)
		return
	}
	claimed := int64(0)
	if filter.PlayerUserID != nil {
		claimed = *filter.PlayerUserID
	}
	actor, err := resolveActor(c, claimed)
	if err != nil {
		respondError(c, err)
		return
	}
	if filter.PlayerUserID == nil && filter.TeamID == nil {
		filter.PlayerUserID = &actor
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status := models.JoinRequestStatus(raw)
		if !status.IsValid() {
			respondError(c, apperrors.ErrInvalidStatus)
			return
		}
		filter.Status = &status
	}

	requests, err := h.joinRequestService.List(actor, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "", requests)
}

// CreateJoinRequest handles POST /team-join-requests
// @Summary Request to join or transfer to a team
// @Description Transfers between teams of the same branch are routed to the league coordinator
// @Tags team-join-requests
// @Accept json
// @Produce json
// @Param request body service.CreateJoinRequest true "Request data"
// @Success 200 {object} Response{data=service.JoinRequestResponse}
// @Failure 400 {object} ErrorResponse "Missing fields, already on team or request pending"
// @Failure 403 {object} ErrorResponse "player_user_id is not the caller"
// @Security BearerAuth
// @Router /team-join-requests [post]
func (h *JoinRequestHandler) CreateJoinRequest(c *gin.Context) {
	var req service.CreateJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	actor, err := resolveActor(c, req.PlayerUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	req.PlayerUserID = actor

	result, err := h.joinRequestService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result.Message, result.Request)
}

// ReviewJoinRequest handles PUT /team-join-requests
// @Summary Accept or reject a join request
// @Description Only the coach of the target team may decide. Accepting places the player on the team.
// @Tags team-join-requests
// @Accept json
// @Produce json
// @Param request body service.ReviewJoinRequest true "Decision"
// @Success 200 {object} Response{data=service.JoinRequestResponse}
// @Failure 400 {object} ErrorResponse "Invalid status or request already processed"
// @Failure 403 {object} ErrorResponse "Caller does not coach the team"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /team-join-requests [put]
func (h *JoinRequestHandler) ReviewJoinRequest(c *gin.Context) {
	var req service.ReviewJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	actor, err := resolveActor(c, req.CoachUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	req.CoachUserID = actor

	result, err := h.joinRequestService.Review(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result.Message, result.Request)
}
