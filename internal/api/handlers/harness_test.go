package handlers_test

import (
	"net/http/httptest"
	"strconv"
	"time"

	"flagfootball-backend/internal/auth"
	"flagfootball-backend/internal/database/models"
	"flagfootball-backend/internal/testutils"

	"github.com/gin-gonic/gin"
)

// harness is a gin router with the real bearer-token middleware in front of /api
type harness struct {
	*testutils.HTTPTestSuite
	tokens    *auth.TokenService
	public    *gin.RouterGroup
	protected *gin.RouterGroup
}

func newHarness() *harness {
	h := &harness{
		HTTPTestSuite: testutils.SetupHTTPTest(),
		tokens:        auth.NewTokenService("handler-test-secret", time.Hour),
	}
	h.public = h.Router.Group("/api")
	h.protected = h.Router.Group("/api")
	h.protected.Use(auth.NewAuthMiddleware(h.tokens).RequireAuth())
	return h
}

func (h *harness) token(userID int64, role models.UserRole) string {
	signed, _, err := h.tokens.Generate(&models.User{
		BaseModel: models.BaseModel{ID: userID},
		Username:  "user-" + strconv.FormatInt(userID, 10),
		Role:      role,
	})
	if err != nil {
		panic(err)
	}
	return signed
}

func (h *harness) as(userID int64, method, url string, body interface{}) *httptest.ResponseRecorder {
	return h.MakeAuthorizedRequest(method, url, body, h.token(userID, models.UserRolePlayer))
}
