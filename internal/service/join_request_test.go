package service_test

import (
	"errors"
	"testing"

	"flagfootball-backend/internal/database/models"
	apperrors "flagfootball-backend/internal/errors"
	"flagfootball-backend/internal/mocks"
	"flagfootball-backend/internal/repository"
	"flagfootball-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JoinRequestServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockJoinRequestRepositoryInterface
	mockTeamRepo   *mocks.MockTeamRepositoryInterface
	mockPlayerRepo *mocks.MockPlayerRepositoryInterface
	service        *service.JoinRequestService
}

func (suite *JoinRequestServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockJoinRequestRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.service = service.NewJoinRequestService(suite.mockRepo, suite.mockTeamRepo, suite.mockPlayerRepo, validator.New())
}

func (suite *JoinRequestServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func ptr[T any](v T) *T {
	return &v
}

func (suite *JoinRequestServiceTestSuite) createRequest() *service.CreateJoinRequest {
	return &service.CreateJoinRequest{
		PlayerUserID: 12,
		TeamID:       3,
		PlayerName:   "Juan Perez",
		Position:     "WR",
		JerseyNumber: 11,
		Message:      "<b>Hola</b> coach",
	}
}

func (suite *JoinRequestServiceTestSuite) expectNotOnTeam(userID int64, name string, teamID int64) {
	suite.mockPlayerRepo.EXPECT().GetByUserAndTeam(userID, teamID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockPlayerRepo.EXPECT().GetByNameAndTeam(name, teamID).Return(nil, gorm.ErrRecordNotFound)
}

func (suite *JoinRequestServiceTestSuite) TestCreateJoin() {
	suite.expectNotOnTeam(12, "Juan Perez", 3)
	suite.mockRepo.EXPECT().HasOpen(int64(12), int64(3)).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.JoinRequest) error {
		suite.Equal(models.JoinRequestStatusPending, r.Status)
		suite.False(r.RequiresCoordinatorApproval)
		suite.Equal("Hola coach", r.Message)
		r.ID = 5
		return nil
	})

	result, err := suite.service.Create(suite.createRequest())

	suite.Require().NoError(err)
	suite.Equal(int64(5), result.Request.ID)
	suite.Equal("Solicitud enviada exitosamente", result.Message)
}

func (suite *JoinRequestServiceTestSuite) TestCreateAlreadyOnTeam() {
	suite.mockPlayerRepo.EXPECT().GetByUserAndTeam(int64(12), int64(3)).Return(&models.Player{BaseModel: models.BaseModel{ID: 40}}, nil)

	_, err := suite.service.Create(suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrAlreadyOnTeam)
}

func (suite *JoinRequestServiceTestSuite) TestCreateAlreadyOnTeamByName() {
	suite.mockPlayerRepo.EXPECT().GetByUserAndTeam(int64(12), int64(3)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockPlayerRepo.EXPECT().GetByNameAndTeam("Juan Perez", int64(3)).Return(&models.Player{BaseModel: models.BaseModel{ID: 41}}, nil)

	_, err := suite.service.Create(suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrAlreadyOnTeam)
}

func (suite *JoinRequestServiceTestSuite) TestCreatePendingExists() {
	suite.expectNotOnTeam(12, "Juan Perez", 3)
	suite.mockRepo.EXPECT().HasOpen(int64(12), int64(3)).Return(true, nil)

	_, err := suite.service.Create(suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrPendingRequestExists)
}

func (suite *JoinRequestServiceTestSuite) TestCreateTransferWithinBranchNeedsCoordinator() {
	req := suite.createRequest()
	req.IsTransfer = true
	req.FromTeamID = ptr(int64(1))
	req.PlayerID = ptr(int64(40))

	suite.mockPlayerRepo.EXPECT().GetByID(int64(40)).Return(&models.Player{BaseModel: models.BaseModel{ID: 40}, UserID: ptr(int64(12))}, nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndTeam(int64(12), int64(1)).Return(&models.Player{BaseModel: models.BaseModel{ID: 40}}, nil)
	suite.expectNotOnTeam(12, "Juan Perez", 3)
	suite.mockRepo.EXPECT().HasOpen(int64(12), int64(3)).Return(false, nil)
	suite.mockTeamRepo.EXPECT().GetByID(int64(1)).Return(&models.Team{Category: ptr("varonil-a")}, nil)
	suite.mockTeamRepo.EXPECT().GetByID(int64(3)).Return(&models.Team{Category: ptr("Varonil-B")}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.JoinRequest) error {
		suite.Equal(models.JoinRequestStatusPendingCoordinator, r.Status)
		suite.True(r.RequiresCoordinatorApproval)
		return nil
	})

	result, err := suite.service.Create(req)

	suite.Require().NoError(err)
	suite.Contains(result.Message, "coordinador")
	suite.True(result.Request.RequiresCoordinatorApproval)
}

func (suite *JoinRequestServiceTestSuite) TestCreateTransferAcrossBranches() {
	req := suite.createRequest()
	req.IsTransfer = true
	req.FromTeamID = ptr(int64(1))

	suite.mockPlayerRepo.EXPECT().GetByUserAndTeam(int64(12), int64(1)).Return(&models.Player{BaseModel: models.BaseModel{ID: 40}}, nil)
	suite.expectNotOnTeam(12, "Juan Perez", 3)
	suite.mockRepo.EXPECT().HasOpen(int64(12), int64(3)).Return(false, nil)
	suite.mockTeamRepo.EXPECT().GetByID(int64(1)).Return(&models.Team{Category: ptr("femenil-a")}, nil)
	suite.mockTeamRepo.EXPECT().GetByID(int64(3)).Return(&models.Team{Category: ptr("mixto-b")}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.JoinRequest) error {
		suite.Equal(models.JoinRequestStatusPending, r.Status)
		return nil
	})

	result, err := suite.service.Create(req)

	suite.Require().NoError(err)
	suite.Equal("Solicitud de transferencia enviada exitosamente", result.Message)
}

func (suite *JoinRequestServiceTestSuite) TestCreateRejectsRowOfAnotherUser() {
	req := suite.createRequest()
	req.IsTransfer = true
	req.PlayerID = ptr(int64(99))

	suite.mockPlayerRepo.EXPECT().GetByID(int64(99)).Return(&models.Player{BaseModel: models.BaseModel{ID: 99}, UserID: ptr(int64(77))}, nil)

	_, err := suite.service.Create(req)

	suite.ErrorIs(err, apperrors.ErrActorMismatch)
	suite.True(apperrors.IsAuthorization(err))
}

func (suite *JoinRequestServiceTestSuite) TestCreateRejectsUnlinkedOrMissingRow() {
	req := suite.createRequest()
	req.PlayerID = ptr(int64(98))
	suite.mockPlayerRepo.EXPECT().GetByID(int64(98)).Return(&models.Player{BaseModel: models.BaseModel{ID: 98}}, nil)

	_, err := suite.service.Create(req)
	suite.ErrorIs(err, apperrors.ErrActorMismatch)

	req.PlayerID = ptr(int64(97))
	suite.mockPlayerRepo.EXPECT().GetByID(int64(97)).Return(nil, gorm.ErrRecordNotFound)

	_, err = suite.service.Create(req)
	suite.ErrorIs(err, apperrors.ErrPlayerNotFound)
}

func (suite *JoinRequestServiceTestSuite) TestCreateRejectsOriginTeamWithoutRow() {
	req := suite.createRequest()
	req.IsTransfer = true
	req.FromTeamID = ptr(int64(1))

	suite.mockPlayerRepo.EXPECT().GetByUserAndTeam(int64(12), int64(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(req)

	suite.ErrorIs(err, apperrors.ErrNotOnOriginTeam)
}

func (suite *JoinRequestServiceTestSuite) TestCreateValidation() {
	req := suite.createRequest()
	req.Position = "  "
	_, err := suite.service.Create(req)
	suite.ErrorIs(err, apperrors.ErrMissingFields)

	req = suite.createRequest()
	req.JerseyNumber = 120
	_, err = suite.service.Create(req)
	suite.ErrorIs(err, apperrors.ErrInvalidJerseyNumber)
}

func (suite *JoinRequestServiceTestSuite) TestListTeamForItsCoach() {
	filter := repository.JoinRequestFilter{TeamID: ptr(int64(3))}
	suite.expectCoach(2)
	suite.mockRepo.EXPECT().List(filter).Return([]models.JoinRequest{
		{BaseModel: models.BaseModel{ID: 2}, TeamID: 3, Team: &models.Team{BaseModel: models.BaseModel{ID: 3}, Name: "Halcones"}},
	}, nil)

	out, err := suite.service.List(2, filter)

	suite.Require().NoError(err)
	suite.Require().Len(out, 1)
	suite.Equal("Halcones", out[0].Team.Name)
}

func (suite *JoinRequestServiceTestSuite) TestListTeamForOtherUserForbidden() {
	suite.expectCoach(2)

	_, err := suite.service.List(12, repository.JoinRequestFilter{TeamID: ptr(int64(3))})

	suite.ErrorIs(err, apperrors.ErrNotTeamCoach)
}

func (suite *JoinRequestServiceTestSuite) TestListOwnRequests() {
	suite.mockRepo.EXPECT().List(repository.JoinRequestFilter{PlayerUserID: ptr(int64(12))}).Return([]models.JoinRequest{}, nil)
	out, err := suite.service.List(12, repository.JoinRequestFilter{})
	suite.Require().NoError(err)
	suite.Empty(out)

	own := repository.JoinRequestFilter{TeamID: ptr(int64(3)), PlayerUserID: ptr(int64(12))}
	suite.mockRepo.EXPECT().List(own).Return([]models.JoinRequest{}, nil)
	_, err = suite.service.List(12, own)
	suite.Require().NoError(err)

	_, err = suite.service.List(12, repository.JoinRequestFilter{PlayerUserID: ptr(int64(77))})
	suite.ErrorIs(err, apperrors.ErrActorMismatch)
}

func (suite *JoinRequestServiceTestSuite) pending(req models.JoinRequest) *models.JoinRequest {
	req.ID = 5
	req.TeamID = 3
	req.PlayerUserID = 12
	req.PlayerName = "Juan Perez"
	req.Position = "WR"
	req.JerseyNumber = 11
	if req.Status == "" {
		req.Status = models.JoinRequestStatusPending
	}
	return &req
}

func (suite *JoinRequestServiceTestSuite) expectCoach(coachID int64) {
	suite.mockTeamRepo.EXPECT().GetByID(int64(3)).Return(&models.Team{BaseModel: models.BaseModel{ID: 3}, CoachID: ptr(coachID)}, nil)
}

func (suite *JoinRequestServiceTestSuite) review(status models.JoinRequestStatus) *service.ReviewJoinRequest {
	return &service.ReviewJoinRequest{ID: 5, Status: status, CoachUserID: 2}
}

func (suite *JoinRequestServiceTestSuite) TestReviewRejectsOpenStatus() {
	_, err := suite.service.Review(suite.review(models.JoinRequestStatusPending))
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *JoinRequestServiceTestSuite) TestReviewNotFound() {
	suite.mockRepo.EXPECT().GetByID(int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Review(suite.review(models.JoinRequestStatusAccepted))

	suite.ErrorIs(err, apperrors.ErrJoinRequestNotFound)
}

func (suite *JoinRequestServiceTestSuite) TestReviewByOtherCoach() {
	suite.mockRepo.EXPECT().GetByID(int64(5)).Return(suite.pending(models.JoinRequest{}), nil)
	suite.expectCoach(99)

	_, err := suite.service.Review(suite.review(models.JoinRequestStatusAccepted))

	suite.ErrorIs(err, apperrors.ErrNotTeamCoach)
}

func (suite *JoinRequestServiceTestSuite) TestReviewTerminalRequest() {
	suite.mockRepo.EXPECT().GetByID(int64(5)).Return(suite.pending(models.JoinRequest{Status: models.JoinRequestStatusRejected}), nil)
	suite.expectCoach(2)

	_, err := suite.service.Review(suite.review(models.JoinRequestStatusAccepted))

	suite.ErrorIs(err, apperrors.ErrRequestAlreadyReviewed)
}

func (suite *JoinRequestServiceTestSuite) TestReviewReject() {
	suite.mockRepo.EXPECT().GetByID(int64(5)).Return(suite.pending(models.JoinRequest{}), nil)
	suite.expectCoach(2)
	suite.mockRepo.EXPECT().UpdateStatus(int64(5), models.JoinRequestStatusRejected).Return(nil)

	result, err := suite.service.Review(suite.review(models.JoinRequestStatusRejected))

	suite.Require().NoError(err)
	suite.Equal("Solicitud rechazada", result.Message)
	suite.Equal(models.JoinRequestStatusRejected, result.Request.Status)
}

func (suite *JoinRequestServiceTestSuite) TestAcceptPatchesExistingRowAndClaimsIt() {
	suite.mockRepo.EXPECT().GetByID(int64(5)).Return(suite.pending(models.JoinRequest{}), nil)
	suite.expectCoach(2)
	suite.mockRepo.EXPECT().UpdateStatus(int64(5), models.JoinRequestStatusAccepted).Return(nil)
	suite.mockPlayerRepo.EXPECT().GetByUserAndTeam(int64(12), int64(3)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockPlayerRepo.EXPECT().GetByNameAndTeam("Juan Perez", int64(3)).Return(&models.Player{BaseModel: models.BaseModel{ID: 77}}, nil)
	suite.mockPlayerRepo.EXPECT().Update(int64(77), map[string]interface{}{
		"position":      "WR",
		"jersey_number": 11,
		"user_id":       int64(12),
	}).Return(nil)

	result, err := suite.service.Review(suite.review(models.JoinRequestStatusAccepted))

	suite.Require().NoError(err)
	suite.Equal("Jugador aceptado al equipo exitosamente", result.Message)
}

func (suite *JoinRequestServiceTestSuite) TestAcceptTransferMovesNamedRow() {
	req := suite.pending(models.JoinRequest{IsTransfer: true, PlayerID: ptr(int64(40)), FromTeamID: ptr(int64(1))})
	suite.mockRepo.EXPECT().GetByID(int64(5)).Return(req, nil)
	suite.expectCoach(2)
	suite.mockRepo.EXPECT().UpdateStatus(int64(5), models.JoinRequestStatusAccepted).Return(nil)
	suite.expectNotOnTeam(12, "Juan Perez", 3)
	suite.mockPlayerRepo.EXPECT().Update(int64(40), map[string]interface{}{
		"team_id":       int64(3),
		"position":      "WR",
		"jersey_number": 11,
	}).Return(nil)

	result, err := suite.service.Review(suite.review(models.JoinRequestStatusAccepted))

	suite.Require().NoError(err)
	suite.Equal("Transferencia completada exitosamente", result.Message)
}

func (suite *JoinRequestServiceTestSuite) TestAcceptClonesOldestProfile() {
	birth := datatypes.Date(mustDate("1998-03-14"))
	original := &models.Player{
		BaseModel:            models.BaseModel{ID: 40},
		Name:                 "Juan Alberto Perez",
		UserID:               ptr(int64(12)),
		TeamID:               ptr(int64(1)),
		Position:             "QB",
		JerseyNumber:         7,
		Phone:                "5551234567",
		BirthDate:            &birth,
		BloodType:            "O+",
		EmergencyContactName: "Maria",
		SeasonsPlayed:        ptr(4),
		MedicalConditions:    "asma",
		ProfileCompleted:     true,
	}

	suite.mockRepo.EXPECT().GetByID(int64(5)).Return(suite.pending(models.JoinRequest{}), nil)
	suite.expectCoach(2)
	suite.mockRepo.EXPECT().UpdateStatus(int64(5), models.JoinRequestStatusAccepted).Return(nil)
	suite.expectNotOnTeam(12, "Juan Perez", 3)
	suite.mockPlayerRepo.EXPECT().GetOldestByUser(int64(12)).Return(original, nil)
	suite.mockPlayerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Player) error {
		suite.Equal(int64(0), p.ID)
		suite.Equal("Juan Alberto Perez", p.Name)
		suite.Equal(int64(3), *p.TeamID)
		suite.Equal(int64(12), *p.UserID)
		suite.Equal("WR", p.Position)
		suite.Equal(11, p.JerseyNumber)
		suite.Equal("5551234567", p.Phone)
		suite.Equal(&birth, p.BirthDate)
		suite.Equal("O+", p.BloodType)
		suite.Equal("Maria", p.EmergencyContactName)
		suite.Equal(4, *p.SeasonsPlayed)
		suite.Equal("asma", p.MedicalConditions)
		suite.True(p.ProfileCompleted)
		return nil
	})

	_, err := suite.service.Review(suite.review(models.JoinRequestStatusAccepted))

	suite.NoError(err)
}

func (suite *JoinRequestServiceTestSuite) TestAcceptWithoutProfileUsesRequestFields() {
	suite.mockRepo.EXPECT().GetByID(int64(5)).Return(suite.pending(models.JoinRequest{}), nil)
	suite.expectCoach(2)
	suite.mockRepo.EXPECT().UpdateStatus(int64(5), models.JoinRequestStatusAccepted).Return(nil)
	suite.expectNotOnTeam(12, "Juan Perez", 3)
	suite.mockPlayerRepo.EXPECT().GetOldestByUser(int64(12)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockPlayerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Player) error {
		suite.Equal("Juan Perez", p.Name)
		suite.Equal(int64(12), *p.UserID)
		return nil
	})

	_, err := suite.service.Review(suite.review(models.JoinRequestStatusAccepted))

	suite.NoError(err)
}

func (suite *JoinRequestServiceTestSuite) TestAcceptSurfacesAssignmentFailure() {
	suite.mockRepo.EXPECT().GetByID(int64(5)).Return(suite.pending(models.JoinRequest{}), nil)
	suite.expectCoach(2)
	suite.mockRepo.EXPECT().UpdateStatus(int64(5), models.JoinRequestStatusAccepted).Return(nil)
	suite.expectNotOnTeam(12, "Juan Perez", 3)
	suite.mockPlayerRepo.EXPECT().GetOldestByUser(int64(12)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockPlayerRepo.EXPECT().Create(gomock.Any()).Return(errors.New("duplicate key"))

	result, err := suite.service.Review(suite.review(models.JoinRequestStatusAccepted))

	suite.Error(err)
	suite.Nil(result)
}

func TestJoinRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JoinRequestServiceTestSuite))
}
