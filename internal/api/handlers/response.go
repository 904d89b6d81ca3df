package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"flagfootball-backend/internal/auth"
	apperrors "flagfootball-backend/internal/errors"
	"flagfootball-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	msgInternalError  = "Error interno del servidor"
	msgInvalidPayload = "Formato de solicitud invalido"
)

// Response is the envelope every API route answers with
type Response struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope of a failed request
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Faltan campos requeridos"`
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Message: message})
}

// respondError maps a service error to its status. Unknown errors are logged and hidden.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		respondFail(c, http.StatusBadRequest, err.Error())
	case apperrors.IsNotFound(err):
		respondFail(c, http.StatusNotFound, err.Error())
	case apperrors.IsAlreadyExists(err):
		respondFail(c, http.StatusConflict, err.Error())
	case apperrors.IsAuthorization(err):
		respondFail(c, http.StatusForbidden, err.Error())
	case apperrors.IsAuthentication(err):
		respondFail(c, http.StatusUnauthorized, err.Error())
	default:
		logger.WithContext(c).WithError(err).WithField("path", c.FullPath()).Error("request failed")
		respondFail(c, http.StatusInternalServerError, msgInternalError)
	}
}

// resolveActor returns the authenticated user id. A claimed id of zero defaults to the
// caller; any other claimed id must be the caller's own.
func resolveActor(c *gin.Context, claimed int64) (int64, error) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return 0, apperrors.ErrMissingToken
	}
	if claimed != 0 && claimed != userID {
		return 0, apperrors.ErrActorMismatch
	}
	return userID, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidID
	}
	return id, nil
}

// optionalID parses a query value that may be absent
func optionalID(raw string) (*int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
