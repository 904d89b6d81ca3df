package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"flagfootball-backend/internal/api/handlers"
	apperrors "flagfootball-backend/internal/errors"
	"flagfootball-backend/internal/mocks"
	"flagfootball-backend/internal/service"
	"flagfootball-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CatalogHandlerTestSuite covers the read-only team, game and player routes
type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockTeams  *mocks.MockTeamServiceInterface
	mockGames  *mocks.MockGameServiceInterface
	mockPlayer *mocks.MockPlayerServiceInterface
	h          *harness
}

func (suite *CatalogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeams = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.mockGames = mocks.NewMockGameServiceInterface(suite.ctrl)
	suite.mockPlayer = mocks.NewMockPlayerServiceInterface(suite.ctrl)

	teamHandler := handlers.NewTeamHandler(suite.mockTeams)
	gameHandler := handlers.NewGameHandler(suite.mockGames)
	playerHandler := handlers.NewPlayerHandler(suite.mockPlayer)

	suite.h = newHarness()
	suite.h.public.GET("/teams", teamHandler.ListTeams)
	suite.h.public.GET("/games", gameHandler.ListGames)
	suite.h.public.GET("/players/:id", playerHandler.GetPlayer)
	suite.h.protected.GET("/games/:id/attendance", gameHandler.GetAttendance)
}

func (suite *CatalogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogHandlerTestSuite) TestListTeams() {
	coachID := int64(2)
	suite.mockTeams.EXPECT().List(&coachID).Return([]service.TeamResponse{{TeamSummary: service.TeamSummary{ID: 3, Name: "Halcones"}}}, nil)

	rec := suite.h.MakeRequest(http.MethodGet, "/api/teams?coach_id=2", nil)
	testutils.AssertSuccessResponse(suite.T(), rec, http.StatusOK)

	suite.mockTeams.EXPECT().List(nil).Return(nil, errors.New("db down"))
	rec = suite.h.MakeRequest(http.MethodGet, "/api/teams", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusInternalServerError, "Error interno del servidor")

	rec = suite.h.MakeRequest(http.MethodGet, "/api/teams?coach_id=-1", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "ID invalido")
}

func (suite *CatalogHandlerTestSuite) TestListGames() {
	suite.mockGames.EXPECT().List("scheduled").Return([]service.GameSummary{{ID: 8}}, nil)
	rec := suite.h.MakeRequest(http.MethodGet, "/api/games?status=scheduled", nil)
	testutils.AssertSuccessResponse(suite.T(), rec, http.StatusOK)

	suite.mockGames.EXPECT().List("later").Return(nil, apperrors.ErrInvalidStatus)
	rec = suite.h.MakeRequest(http.MethodGet, "/api/games?status=later", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Estado invalido")
}

func (suite *CatalogHandlerTestSuite) TestGameAttendance() {
	suite.mockGames.EXPECT().GetAttendance(int64(8)).Return([]service.AttendanceResponse{{GameID: 8, PlayerID: 40, Attended: true}}, nil)

	rec := suite.h.as(2, http.MethodGet, "/api/games/8/attendance", nil)

	var body struct {
		Data []service.AttendanceResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &body)
	suite.Require().Len(body.Data, 1)
	suite.True(body.Data[0].Attended)
}

func (suite *CatalogHandlerTestSuite) TestGetPlayer() {
	suite.mockPlayer.EXPECT().GetPublicPlayer(int64(40)).Return(&service.PublicPlayerResponse{ID: 40, GamesPlayed: 6}, nil)
	rec := suite.h.MakeRequest(http.MethodGet, "/api/players/40", nil)

	var body struct {
		Data service.PublicPlayerResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &body)
	suite.Equal(int64(6), body.Data.GamesPlayed)

	suite.mockPlayer.EXPECT().GetPublicPlayer(int64(41)).Return(nil, apperrors.ErrPlayerNotFound)
	rec = suite.h.MakeRequest(http.MethodGet, "/api/players/41", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "Jugador no encontrado")

	rec = suite.h.MakeRequest(http.MethodGet, "/api/players/abc", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "ID invalido")
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
