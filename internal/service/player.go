package service

import (
	"fmt"

	"flagfootball-backend/internal/database/models"
	apperrors "flagfootball-backend/internal/errors"
	"flagfootball-backend/internal/repository"
)

// PlayerService serves the public player page
type PlayerService struct {
	playerRepo     repository.PlayerRepositoryInterface
	attendanceRepo repository.AttendanceRepositoryInterface
	statsRepo      repository.StatsRepositoryInterface
}

// NewPlayerService creates a new player service
func NewPlayerService(playerRepo repository.PlayerRepositoryInterface, attendanceRepo repository.AttendanceRepositoryInterface, statsRepo repository.StatsRepositoryInterface) *PlayerService {
	return &PlayerService{
		playerRepo:     playerRepo,
		attendanceRepo: attendanceRepo,
		statsRepo:      statsRepo,
	}
}

// PublicPlayerResponse is what anyone scanning a player's code may see
type PublicPlayerResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	JerseyNumber  int               `json:"jersey_number"`
	Position      string            `json:"position"`
	PhotoURL      string            `json:"photo_url"`
	TeamID        *int64            `json:"team_id"`
	SeasonsPlayed *int              `json:"seasons_played"`
	PlayingSince  string            `json:"playing_since"`
	Team          *TeamSummary      `json:"teams"`
	GamesPlayed   int64             `json:"games_played"`
	Stats         models.StatTotals `json:"stats"`
}

// GetPublicPlayer returns a player with their team, attended games and summed stats
func (s *PlayerService) GetPublicPlayer(id int64) (*PublicPlayerResponse, error) {
	if id <= 0 {
		return nil, apperrors.ErrInvalidID
	}

	player, err := s.playerRepo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	gamesPlayed, err := s.attendanceRepo.CountAttendedByPlayer(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}

	totals, err := s.statsRepo.SumByPlayer(id)
	if err != nil {
		return nil, fmt.Errorf("failed to sum stats: %w", err)
	}

	return &PublicPlayerResponse{
		ID:            player.ID,
		Name:          player.Name,
		JerseyNumber:  player.JerseyNumber,
		Position:      player.Position,
		PhotoURL:      player.PhotoURL,
		TeamID:        player.TeamID,
		SeasonsPlayed: player.SeasonsPlayed,
		PlayingSince:  formatDate(player.PlayingSince),
		Team:          toTeamSummary(player.Team),
		GamesPlayed:   gamesPlayed,
		Stats:         *totals,
	}, nil
}
