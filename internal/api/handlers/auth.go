package handlers

import (
	"net/http"

	"flagfootball-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles sign-up, sign-in and session lookups
type AuthHandler struct {
	registrationService service.RegistrationServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(registrationService service.RegistrationServiceInterface) *AuthHandler {
	return &AuthHandler{registrationService: registrationService}
}

// Register handles POST /auth/register
// @Summary Register an account
// @Description Create a coach or player account. Players also get a profile row without a team.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Account data"
// @Success 201 {object} Response{data=service.UserResponse} "Account created"
// @Failure 400 {object} ErrorResponse "Missing or invalid fields"
// @Failure 409 {object} ErrorResponse "Username or email already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	resp, err := h.registrationService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, resp.Message, resp.User)
}

// Login handles POST /auth/login
// @Summary Sign in
// @Description Exchange username (or email) and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} Response{data=service.LoginResponse} "Signed in"
// @Failure 400 {object} ErrorResponse "Missing fields"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	resp, err := h.registrationService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "", resp)
}

// Me handles GET /auth/me
// @Summary Current account
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=service.UserResponse}
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := resolveActor(c, 0)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.registrationService.Me(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "", user)
}
