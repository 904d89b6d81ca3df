package repository

import (
	"flagfootball-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository handles database operations for game attendance
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// GetByGameAndPlayer retrieves the attendance record for a player at a game
func (r *AttendanceRepository) GetByGameAndPlayer(gameID, playerID int64) (*models.GameAttendance, error) {
	var record models.GameAttendance
	err := r.db.Where("game_id = ? AND player_id = ?", gameID, playerID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarkAttended upserts the (game, player) record with attended=true
func (r *AttendanceRepository) MarkAttended(gameID, playerID int64) (*models.GameAttendance, error) {
	record := models.GameAttendance{GameID: gameID, PlayerID: playerID, Attended: true}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"attended", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// CountAttendedByPlayer counts the games a player checked in to
func (r *AttendanceRepository) CountAttendedByPlayer(playerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.GameAttendance{}).
		Where("player_id = ? AND attended = ?", playerID, true).
		Count(&count).Error
	return count, err
}

// ListByGame lists a game's attendance with player rows and their teams
func (r *AttendanceRepository) ListByGame(gameID int64) ([]models.GameAttendance, error) {
	var records []models.GameAttendance
	err := r.db.Preload("Player.Team").
		Where("game_id = ?", gameID).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
