package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"flagfootball-backend/internal/api/middleware"
	"flagfootball-backend/internal/config"
	"flagfootball-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(middleware.RequestID())
	h.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generated", func(t *testing.T) {
		rec := h.MakeRequest(http.MethodGet, "/ping", nil)
		id := rec.Header().Get(middleware.RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		rec := h.MakeRequestWithHeaders(http.MethodGet, "/ping", nil, map[string]string{middleware.RequestIDHeader: "abc-123"})
		assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())
	h.Router.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	rec := h.MakeRequest(http.MethodGet, "/boom", nil)

	testutils.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Error interno del servidor")
}

func TestCORS(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(middleware.CORS(&config.Config{AllowedOrigins: []string{"http://localhost:3000"}}))
	h.Router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()
	h.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
