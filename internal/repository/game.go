package repository

import (
	"flagfootball-backend/internal/database/models"

	"gorm.io/gorm"
)

// GameRepository handles database operations for games
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create creates a new game
func (r *GameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(id int64) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// List returns games by date and time, optionally filtered by status
func (r *GameRepository) List(status string) ([]models.Game, error) {
	var games []models.Game
	query := r.db.Model(&models.Game{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("game_date ASC, game_time ASC, id ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}
