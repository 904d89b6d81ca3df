package middleware

import (
	"net/http"

	"flagfootball-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Error interno del servidor"

// Recovery turns a handler panic into the standard 500 envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithContext(c).WithField("panic", recovered).Error("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": internalErrorMessage,
		})
	})
}
