package service

import (
	"fmt"

	"flagfootball-backend/internal/repository"
)

// TeamService lists league teams
type TeamService struct {
	repo repository.TeamRepositoryInterface
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface) *TeamService {
	return &TeamService{repo: repo}
}

// TeamResponse is a team with its coach
type TeamResponse struct {
	TeamSummary
	CoachID *int64 `json:"coach_id"`
}

// List returns every team, or only those coached by coachID
func (s *TeamService) List(coachID *int64) ([]TeamResponse, error) {
	teams, err := s.repo.List(coachID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	out := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, TeamResponse{TeamSummary: *toTeamSummary(&teams[i]), CoachID: teams[i].CoachID})
	}
	return out, nil
}
