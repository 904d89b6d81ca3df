package repository

import (
	"flagfootball-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for account repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByUsernameOrEmail(username, email string) (*models.User, error)
	Delete(id int64) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id int64) (*models.Team, error)
	List(coachID *int64) ([]models.Team, error)
}

// PlayerRepositoryInterface defines the interface for player row operations
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id int64) (*models.Player, error)
	GetByUserAndTeam(userID, teamID int64) (*models.Player, error)
	GetByNameAndTeam(name string, teamID int64) (*models.Player, error)
	GetOldestByUser(userID int64) (*models.Player, error)
	GetAllByUser(userID int64) ([]models.Player, error)
	GetByTeamID(teamID int64) ([]models.Player, error)
	Update(id int64, updates map[string]interface{}) error
	UpdateByUser(userID int64, updates map[string]interface{}) (int64, error)
}

// JoinRequestFilter narrows a join request listing. Nil fields are not applied.
type JoinRequestFilter struct {
	TeamID       *int64
	PlayerUserID *int64
	Status       *models.JoinRequestStatus
}

// JoinRequestRepositoryInterface defines the interface for join request operations
type JoinRequestRepositoryInterface interface {
	Create(req *models.JoinRequest) error
	GetByID(id int64) (*models.JoinRequest, error)
	List(filter JoinRequestFilter) ([]models.JoinRequest, error)
	HasOpen(playerUserID, teamID int64) (bool, error)
	UpdateStatus(id int64, status models.JoinRequestStatus) error
}

// GameRepositoryInterface defines the interface for game operations
type GameRepositoryInterface interface {
	Create(game *models.Game) error
	GetByID(id int64) (*models.Game, error)
	List(status string) ([]models.Game, error)
}

// AttendanceRepositoryInterface defines the interface for game attendance operations
type AttendanceRepositoryInterface interface {
	GetByGameAndPlayer(gameID, playerID int64) (*models.GameAttendance, error)
	MarkAttended(gameID, playerID int64) (*models.GameAttendance, error)
	CountAttendedByPlayer(playerID int64) (int64, error)
	ListByGame(gameID int64) ([]models.GameAttendance, error)
}

// StatsRepositoryInterface defines the interface for per-game player statistics
type StatsRepositoryInterface interface {
	Create(stat *models.PlayerGameStat) error
	SumByPlayer(playerID int64) (*models.StatTotals, error)
}
