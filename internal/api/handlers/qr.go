package handlers

import (
	"net/http"

	apperrors "flagfootball-backend/internal/errors"
	"flagfootball-backend/internal/qrcode"
	"flagfootball-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// QRHandler issues player codes and records attendance scans
type QRHandler struct {
	qrService service.QRServiceInterface
}

// NewQRHandler creates a new QR handler
func NewQRHandler(qrService service.QRServiceInterface) *QRHandler {
	return &QRHandler{qrService: qrService}
}

// ScanEnvelope is the scan response
type ScanEnvelope struct {
	Success           bool               `json:"success" example:"true"`
	Message           string             `json:"message"`
	AlreadyRegistered bool               `json:"already_registered"`
	Data              service.ScanResult `json:"data"`
}

// Generate handles GET /qr/generate
// @Summary Generate player codes
// @Description One player's code, or the whole roster of a team ordered by jersey number
// @Tags qr
// @Produce json
// @Param player_id query int false "Player ID"
// @Param team_id query int false "Team ID, used when player_id is absent"
// @Param format query string false "png (data URL, default) or svg"
// @Success 200 {object} Response{data=service.PlayerQRResponse} "player_id given"
// @Success 200 {object} Response{data=[]service.PlayerQRResponse} "team_id given"
// @Failure 400 {object} ErrorResponse "Neither id given"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Security BearerAuth
// @Router /qr/generate [get]
func (h *QRHandler) Generate(c *gin.Context) {
	format := qrcode.ParseFormat(c.Query("format"))

	playerID, err := optionalID(c.Query("player_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if playerID != nil {
		code, err := h.qrService.GeneratePlayer(*playerID, format)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, http.StatusOK, "", code)
		return
	}

	teamID, err := optionalID(c.Query("team_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if teamID == nil {
		respondError(c, apperrors.ErrQRTargetRequired)
		return
	}

	codes, err := h.qrService.GenerateTeam(*teamID, format)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", codes)
}

// Scan handles POST /qr/scan
// @Summary Record attendance from a scanned code
// @Description Scanning the same player for the same game twice reports already_registered and writes nothing
// @Tags qr
// @Accept json
// @Produce json
// @Param request body service.ScanRequest true "Scanned payload and game"
// @Success 200 {object} ScanEnvelope
// @Failure 400 {object} ErrorResponse "Missing fields or unreadable code"
// @Failure 404 {object} ErrorResponse "Player or game not found"
// @Security BearerAuth
// @Router /qr/scan [post]
func (h *QRHandler) Scan(c *gin.Context) {
	var req service.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrScanFieldsRequired)
		return
	}

	result, err := h.qrService.Scan(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ScanEnvelope{
		Success:           true,
		Message:           result.Message,
		AlreadyRegistered: result.AlreadyRegistered,
		Data:              *result,
	})
}
