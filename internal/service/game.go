package service

import (
	"fmt"
	"time"

	"flagfootball-backend/internal/database/models"
	apperrors "flagfootball-backend/internal/errors"
	"flagfootball-backend/internal/repository"
)

// GameService lists games and their attendance
type GameService struct {
	repo           repository.GameRepositoryInterface
	attendanceRepo repository.AttendanceRepositoryInterface
}

// NewGameService creates a new game service
func NewGameService(repo repository.GameRepositoryInterface, attendanceRepo repository.AttendanceRepositoryInterface) *GameService {
	return &GameService{repo: repo, attendanceRepo: attendanceRepo}
}

// AttendanceResponse is one check-in with the player who made it
type AttendanceResponse struct {
	ID          int64          `json:"id"`
	GameID      int64          `json:"game_id"`
	PlayerID    int64          `json:"player_id"`
	Attended    bool           `json:"attended"`
	CheckedInAt time.Time      `json:"checked_in_at"`
	Player      *PlayerSummary `json:"player,omitempty"`
}

// List returns games by date, optionally only those with the given status
func (s *GameService) List(status string) ([]GameSummary, error) {
	if status != "" && !models.GameStatus(status).IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	games, err := s.repo.List(status)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	out := make([]GameSummary, 0, len(games))
	for i := range games {
		out = append(out, toGameSummary(&games[i]))
	}
	return out, nil
}

// GetAttendance lists the check-ins of a game
func (s *GameService) GetAttendance(gameID int64) ([]AttendanceResponse, error) {
	if gameID <= 0 {
		return nil, apperrors.ErrInvalidID
	}
	if _, err := s.repo.GetByID(gameID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	records, err := s.attendanceRepo.ListByGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	out := make([]AttendanceResponse, 0, len(records))
	for _, r := range records {
		resp := AttendanceResponse{
			ID:          r.ID,
			GameID:      r.GameID,
			PlayerID:    r.PlayerID,
			Attended:    r.Attended,
			CheckedInAt: r.UpdatedAt,
		}
		if r.Player != nil {
			summary := toPlayerSummary(r.Player)
			resp.Player = &summary
		}
		out = append(out, resp)
	}
	return out, nil
}
