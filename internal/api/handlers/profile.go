package handlers

import (
	"net/http"

	"flagfootball-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const msgProfileUpdated = "Perfil actualizado exitosamente"

// ProfileHandler serves a player's own profile
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileEnvelope is the profile response: the primary row plus every team membership
type ProfileEnvelope struct {
	Success     bool                  `json:"success" example:"true"`
	Message     string                `json:"message,omitempty"`
	Data        service.PlayerProfile `json:"data"`
	PlayerTeams []service.PlayerTeam  `json:"playerTeams"`
}

// UpdateProfileRequest is a profile patch addressed to a user
type UpdateProfileRequest struct {
	UserID int64 `json:"user_id" example:"12"`
	service.ProfilePatch
}

// GetProfile handles GET /player/profile
// @Summary Get own player profile
// @Description Returns the primary roster row (first with a team, else the oldest) and all team memberships
// @Tags profile
// @Produce json
// @Param user_id query int false "User ID, defaults to the caller"
// @Success 200 {object} ProfileEnvelope
// @Failure 400 {object} ErrorResponse "Invalid user id"
// @Failure 403 {object} ErrorResponse "user_id is not the caller"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /player/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	claimed, err := optionalID(c.Query("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var claimedID int64
	if claimed != nil {
		claimedID = *claimed
	}

	userID, err := resolveActor(c, claimedID)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileEnvelope{Success: true, Data: profile.Profile, PlayerTeams: profile.PlayerTeams})
}

// UpdateProfile handles PUT /player/profile
// @Summary Update own player profile
// @Description Applies the given fields to every roster row of the user and marks the profile completed
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} ProfileEnvelope
// @Failure 400 {object} ErrorResponse "Invalid field"
// @Failure 403 {object} ErrorResponse "user_id is not the caller"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Security BearerAuth
// @Router /player/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	userID, err := resolveActor(c, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.profileService.UpdateProfile(userID, &req.ProfilePatch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileEnvelope{
		Success:     true,
		Message:     msgProfileUpdated,
		Data:        profile.Profile,
		PlayerTeams: profile.PlayerTeams,
	})
}
