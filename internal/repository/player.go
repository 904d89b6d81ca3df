package repository

import (
	"strings"

	"flagfootball-backend/internal/database/models"

	"gorm.io/gorm"
)

// PlayerRepository handles database operations for player rows
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player row
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player row with its team
func (r *PlayerRepository) GetByID(id int64) (*models.Player, error) {
	var player models.Player
	err := r.db.Preload("Team").First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByUserAndTeam retrieves the row linking a user to a team
func (r *PlayerRepository) GetByUserAndTeam(userID, teamID int64) (*models.Player, error) {
	var player models.Player
	err := r.db.Where("user_id = ? AND team_id = ?", userID, teamID).First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByNameAndTeam matches a roster row by case-insensitive trimmed name
func (r *PlayerRepository) GetByNameAndTeam(name string, teamID int64) (*models.Player, error) {
	var player models.Player
	err := r.db.
		Where("team_id = ? AND LOWER(TRIM(name)) = ?", teamID, strings.ToLower(strings.TrimSpace(name))).
		Order("id ASC").
		First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetOldestByUser retrieves the first row created for a user
func (r *PlayerRepository) GetOldestByUser(userID int64) (*models.Player, error) {
	var player models.Player
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC, id ASC").First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetAllByUser lists every row of a user, oldest first, with teams
func (r *PlayerRepository) GetAllByUser(userID int64) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Preload("Team").
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetByTeamID lists a team's roster ordered by jersey number
func (r *PlayerRepository) GetByTeamID(teamID int64) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Preload("Team").
		Where("team_id = ?", teamID).
		Order("jersey_number ASC, id ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// Update applies column updates to one row
func (r *PlayerRepository) Update(id int64, updates map[string]interface{}) error {
	return r.db.Model(&models.Player{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateByUser applies column updates to every row of a user and returns the affected count
func (r *PlayerRepository) UpdateByUser(userID int64, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Player{}).Where("user_id = ?", userID).Updates(updates)
	return result.RowsAffected, result.Error
}
