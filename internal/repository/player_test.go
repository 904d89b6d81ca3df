//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"flagfootball-backend/internal/database/models"
	"flagfootball-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlayerRepositoryTestSuite tests the PlayerRepository
type PlayerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlayerRepository
	users         *UserRepository
	teams         *TeamRepository
	factories     *testutils.FactorySet
}

func (suite *PlayerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.teams = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *PlayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PlayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *PlayerRepositoryTestSuite) seedUserAndTeam() (*models.User, *models.Team) {
	user := suite.factories.User.Player()
	suite.Require().NoError(suite.users.Create(user))
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.teams.Create(team))
	return user, team
}

func (suite *PlayerRepositoryTestSuite) TestGetByUserAndTeam() {
	user, team := suite.seedUserAndTeam()
	row := suite.factories.Player.ForUser(user.ID, &team.ID)
	suite.Require().NoError(suite.repo.Create(row))

	found, err := suite.repo.GetByUserAndTeam(user.ID, team.ID)
	suite.Require().NoError(err)
	suite.Equal(row.ID, found.ID)
}

func (suite *PlayerRepositoryTestSuite) TestUniqueUserTeam() {
	user, team := suite.seedUserAndTeam()
	suite.Require().NoError(suite.repo.Create(suite.factories.Player.ForUser(user.ID, &team.ID)))

	err := suite.repo.Create(suite.factories.Player.ForUser(user.ID, &team.ID))
	suite.True(IsUniqueViolation(err))
}

func (suite *PlayerRepositoryTestSuite) TestGetByNameAndTeamIgnoresCaseAndSpaces() {
	_, team := suite.seedUserAndTeam()
	row := suite.factories.Player.Create()
	row.Name = "Juan Perez"
	row.TeamID = &team.ID
	suite.Require().NoError(suite.repo.Create(row))

	found, err := suite.repo.GetByNameAndTeam("  juan PEREZ ", team.ID)
	suite.Require().NoError(err)
	suite.Equal(row.ID, found.ID)

	_, err = suite.repo.GetByNameAndTeam("Pedro", team.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *PlayerRepositoryTestSuite) TestGetAllByUserOrderAndPreload() {
	user, team := suite.seedUserAndTeam()
	first := suite.factories.Player.ForUser(user.ID, nil)
	suite.Require().NoError(suite.repo.Create(first))
	second := suite.factories.Player.ForUser(user.ID, &team.ID)
	suite.Require().NoError(suite.repo.Create(second))

	rows, err := suite.repo.GetAllByUser(user.ID)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal(first.ID, rows[0].ID)
	suite.Nil(rows[0].Team)
	suite.Require().NotNil(rows[1].Team)
	suite.Equal(team.Name, rows[1].Team.Name)

	oldest, err := suite.repo.GetOldestByUser(user.ID)
	suite.Require().NoError(err)
	suite.Equal(first.ID, oldest.ID)
}

func (suite *PlayerRepositoryTestSuite) TestGetByTeamIDOrdersByJersey() {
	_, team := suite.seedUserAndTeam()
	for _, jersey := range []int{23, 4, 11} {
		row := suite.factories.Player.Create()
		row.TeamID = &team.ID
		row.JerseyNumber = jersey
		suite.Require().NoError(suite.repo.Create(row))
	}

	roster, err := suite.repo.GetByTeamID(team.ID)
	suite.Require().NoError(err)
	suite.Require().Len(roster, 3)
	suite.Equal([]int{4, 11, 23}, []int{roster[0].JerseyNumber, roster[1].JerseyNumber, roster[2].JerseyNumber})
}

func (suite *PlayerRepositoryTestSuite) TestUpdateByUserTouchesEveryRow() {
	user, team := suite.seedUserAndTeam()
	suite.Require().NoError(suite.repo.Create(suite.factories.Player.ForUser(user.ID, nil)))
	suite.Require().NoError(suite.repo.Create(suite.factories.Player.ForUser(user.ID, &team.ID)))

	affected, err := suite.repo.UpdateByUser(user.ID, map[string]interface{}{"blood_type": "A-"})
	suite.Require().NoError(err)
	suite.EqualValues(2, affected)

	rows, err := suite.repo.GetAllByUser(user.ID)
	suite.Require().NoError(err)
	for _, row := range rows {
		suite.Equal("A-", row.BloodType)
	}
}

func (suite *PlayerRepositoryTestSuite) TestUpdateMovesRow() {
	user, team := suite.seedUserAndTeam()
	row := suite.factories.Player.ForUser(user.ID, nil)
	suite.Require().NoError(suite.repo.Create(row))

	suite.Require().NoError(suite.repo.Update(row.ID, map[string]interface{}{"team_id": team.ID, "jersey_number": 99}))

	moved, err := suite.repo.GetByID(row.ID)
	suite.Require().NoError(err)
	suite.Equal(team.ID, *moved.TeamID)
	suite.Equal(99, moved.JerseyNumber)
	suite.NotNil(moved.Team)
}

func TestPlayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositoryTestSuite))
}
