package handlers_test

import (
	"net/http"
	"testing"

	"flagfootball-backend/internal/api/handlers"
	apperrors "flagfootball-backend/internal/errors"
	"flagfootball-backend/internal/mocks"
	"flagfootball-backend/internal/qrcode"
	"flagfootball-backend/internal/service"
	"flagfootball-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QRHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockQRServiceInterface
	h           *harness
}

func (suite *QRHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockQRServiceInterface(suite.ctrl)
	handler := handlers.NewQRHandler(suite.mockService)

	suite.h = newHarness()
	suite.h.protected.GET("/qr/generate", handler.Generate)
	suite.h.protected.POST("/qr/scan", handler.Scan)
}

func (suite *QRHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *QRHandlerTestSuite) TestGeneratePlayer() {
	suite.mockService.EXPECT().GeneratePlayer(int64(40), qrcode.FormatSVG).Return(&service.PlayerQRResponse{
		PlayerSummary: service.PlayerSummary{ID: 40, Name: "Juan Perez"},
		ProfileURL:    "https://liga.example.com/perfil/40",
		QRCode:        "<svg/>",
	}, nil)

	rec := suite.h.as(2, http.MethodGet, "/api/qr/generate?player_id=40&format=svg", nil)

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &body)
	suite.Equal("https://liga.example.com/perfil/40", body.Data["profile_url"])
	suite.Equal("<svg/>", body.Data["qr_code"])
	suite.Equal("Juan Perez", body.Data["name"])
}

func (suite *QRHandlerTestSuite) TestGenerateTeam() {
	suite.mockService.EXPECT().GenerateTeam(int64(3), qrcode.FormatPNG).Return([]service.PlayerQRResponse{{}, {}}, nil)

	rec := suite.h.as(2, http.MethodGet, "/api/qr/generate?team_id=3", nil)

	var body struct {
		Data []interface{} `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &body)
	suite.Len(body.Data, 2)
}

func (suite *QRHandlerTestSuite) TestGenerateNeedsTarget() {
	rec := suite.h.as(2, http.MethodGet, "/api/qr/generate", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "player_id o team_id es requerido")
}

func (suite *QRHandlerTestSuite) TestScanAlreadyRegistered() {
	suite.mockService.EXPECT().Scan(gomock.Any()).DoAndReturn(func(req *service.ScanRequest) (*service.ScanResult, error) {
		suite.Equal(int64(8), req.GameID)
		suite.Equal(`{"player_id":40}`, string(req.QRData))
		return &service.ScanResult{
			AlreadyRegistered: true,
			Message:           "Juan Perez ya tiene asistencia registrada",
			Player:            service.PlayerSummary{ID: 40},
			Attended:          true,
		}, nil
	})

	rec := suite.h.as(2, http.MethodPost, "/api/qr/scan", map[string]interface{}{
		"qr_data": map[string]int{"player_id": 40},
		"game_id": 8,
	})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &body)
	suite.Equal(true, body["already_registered"])
	suite.Equal("Juan Perez ya tiene asistencia registrada", body["message"])
	suite.NotContains(body["data"], "already_registered")
}

func (suite *QRHandlerTestSuite) TestScanErrors() {
	suite.mockService.EXPECT().Scan(gomock.Any()).Return(nil, apperrors.ErrInvalidQR)
	rec := suite.h.as(2, http.MethodPost, "/api/qr/scan", map[string]interface{}{"qr_data": "hola", "game_id": 8})
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "QR invalido")

	suite.mockService.EXPECT().Scan(gomock.Any()).Return(nil, apperrors.ErrGameNotFound)
	rec = suite.h.as(2, http.MethodPost, "/api/qr/scan", map[string]interface{}{"qr_data": "40", "game_id": 99})
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "Partido no encontrado")

	rec = suite.h.MakeRequest(http.MethodPost, "/api/qr/scan", map[string]interface{}{"qr_data": "40", "game_id": 8})
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func TestQRHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(QRHandlerTestSuite))
}
