package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flagfootball-backend/internal/api/handlers"
	"flagfootball-backend/internal/database/models"
	apperrors "flagfootball-backend/internal/errors"
	"flagfootball-backend/internal/mocks"
	"flagfootball-backend/internal/service"
	"flagfootball-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRegistrationServiceInterface
	h           *harness
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRegistrationServiceInterface(suite.ctrl)
	handler := handlers.NewAuthHandler(suite.mockService)

	suite.h = newHarness()
	suite.h.public.POST("/auth/register", handler.Register)
	suite.h.public.POST("/auth/login", handler.Login)
	suite.h.protected.GET("/auth/me", handler.Me)
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthHandlerTestSuite) TestRegister() {
	suite.mockService.EXPECT().Register(gomock.Any()).DoAndReturn(func(req *service.RegisterRequest) (*service.RegisterResponse, error) {
		suite.Equal("jperez", req.Username)
		suite.Equal(11, req.JerseyNumber)
		suite.Equal("Juan Perez", req.PlayerName)
		return &service.RegisterResponse{
			User:    service.UserResponse{ID: 7, Username: "jperez", Role: models.UserRolePlayer},
			Message: "Cuenta de jugador creada exitosamente.",
		}, nil
	})

	rec := suite.h.MakeRequest(http.MethodPost, "/api/auth/register", map[string]interface{}{
		"username":     "jperez",
		"email":        "jperez@correo.com",
		"password":     "secreto123",
		"role":         "player",
		"playerName":   "Juan Perez",
		"jerseyNumber": 11,
	})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &body)
	suite.Equal(true, body["success"])
	suite.Equal("Cuenta de jugador creada exitosamente.", body["message"])
	suite.Equal("jperez", body["data"].(map[string]interface{})["username"])
	suite.NotContains(body["data"], "password_hash")
}

func (suite *AuthHandlerTestSuite) TestRegisterErrors() {
	suite.Run("duplicate", func() {
		suite.mockService.EXPECT().Register(gomock.Any()).Return(nil, apperrors.ErrUserExists)
		rec := suite.h.MakeRequest(http.MethodPost, "/api/auth/register", map[string]string{"username": "jperez"})
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "El usuario o email ya existe.")
	})

	suite.Run("validation", func() {
		suite.mockService.EXPECT().Register(gomock.Any()).Return(nil, apperrors.ErrInvalidJerseyNumber)
		rec := suite.h.MakeRequest(http.MethodPost, "/api/auth/register", map[string]string{"username": "jperez"})
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "jersey")
	})

	suite.Run("saga failure is hidden", func() {
		suite.mockService.EXPECT().Register(gomock.Any()).Return(nil, errors.New("failed to register user: create player profile: boom"))
		rec := suite.h.MakeRequest(http.MethodPost, "/api/auth/register", map[string]string{"username": "jperez"})
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusInternalServerError, "Error interno del servidor")
		suite.NotContains(rec.Body.String(), "boom")
	})

	suite.Run("malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		suite.h.Router.ServeHTTP(rec, req)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "")
	})
}

func (suite *AuthHandlerTestSuite) TestLogin() {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.mockService.EXPECT().Login(&service.LoginRequest{Username: "jperez", Password: "secreto123"}).
		Return(&service.LoginResponse{Token: "tok", TokenType: "Bearer", ExpiresAt: expires}, nil)

	rec := suite.h.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{"username": "jperez", "password": "secreto123"})

	var body struct {
		Success bool                  `json:"success"`
		Data    service.LoginResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &body)
	suite.True(body.Success)
	suite.Equal("tok", body.Data.Token)
}

func (suite *AuthHandlerTestSuite) TestLoginBadCredentials() {
	suite.mockService.EXPECT().Login(gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

	rec := suite.h.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{"username": "jperez", "password": "x"})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusUnauthorized, "incorrectos")
}

func (suite *AuthHandlerTestSuite) TestMe() {
	suite.mockService.EXPECT().Me(int64(7)).Return(&service.UserResponse{ID: 7, Username: "jperez"}, nil)

	rec := suite.h.as(7, http.MethodGet, "/api/auth/me", nil)

	testutils.AssertSuccessResponse(suite.T(), rec, http.StatusOK)
}

func (suite *AuthHandlerTestSuite) TestMeRequiresToken() {
	rec := suite.h.MakeRequest(http.MethodGet, "/api/auth/me", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusUnauthorized, "Se requiere iniciar sesion")

	rec = suite.h.MakeAuthorizedRequest(http.MethodGet, "/api/auth/me", nil, "garbage")
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusUnauthorized, "Sesion invalida")
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
