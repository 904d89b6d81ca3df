package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flagfootball-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: 12}, Username: "jperez", Role: models.UserRolePlayer}
}

func TestTokenService(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, expiresAt, err := service.Generate(testUser())
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

		claims, err := service.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(12), claims.UserID)
		assert.Equal(t, "jperez", claims.Username)
		assert.Equal(t, "player", claims.Role)
		assert.Equal(t, "12", claims.Subject)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewTokenService("other-secret", time.Hour).Generate(testUser())
		require.NoError(t, err)

		_, err = service.Validate(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := NewTokenService("test-secret", -time.Minute).Generate(testUser())
		require.NoError(t, err)

		_, err = service.Validate(token)
		assert.Error(t, err)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{UserID: 1})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.Validate(raw)
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewTokenService("test-secret", time.Hour)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		id, _ := GetUserID(c)
		role, _ := GetRole(c)
		claims, ok := GetAuthClaims(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role, "has_claims": ok && claims != nil})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Se requiere iniciar sesion", body["message"])
	})

	t.Run("not a bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, _, err := service.Generate(testUser())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(12), body["id"])
		assert.Equal(t, "player", body["role"])
		assert.Equal(t, true, body["has_claims"])
	})
}
