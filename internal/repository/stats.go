package repository

import (
	"flagfootball-backend/internal/database/models"

	"gorm.io/gorm"
)

// StatsRepository handles database operations for player game statistics
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Create records one player's counters for a game
func (r *StatsRepository) Create(stat *models.PlayerGameStat) error {
	return r.db.Create(stat).Error
}

// SumByPlayer totals every counter across a player's games
func (r *StatsRepository) SumByPlayer(playerID int64) (*models.StatTotals, error) {
	var totals models.StatTotals
	err := r.db.Model(&models.PlayerGameStat{}).
		Select(`COALESCE(SUM(touchdowns), 0) AS touchdowns,
			COALESCE(SUM(interceptions), 0) AS interceptions,
			COALESCE(SUM(sacks), 0) AS sacks,
			COALESCE(SUM(extra_points), 0) AS extra_points,
			COALESCE(SUM(flags), 0) AS flags`).
		Where("player_id = ?", playerID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
