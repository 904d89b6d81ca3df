package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"flagfootball-backend/internal/database/models"
	apperrors "flagfootball-backend/internal/errors"
	"flagfootball-backend/internal/repository"
)

var yearOnly = regexp.MustCompile(`^\d{4}$`)

// ProfileService reads and edits a player's own profile across all of their roster rows
type ProfileService struct {
	playerRepo repository.PlayerRepositoryInterface
}

// NewProfileService creates a new profile service
func NewProfileService(playerRepo repository.PlayerRepositoryInterface) *ProfileService {
	return &ProfileService{playerRepo: playerRepo}
}

// ProfilePatch is a sparse profile edit. A nil field is left untouched; an empty string is
// ignored too, except for medical_conditions which may be cleared.
type ProfilePatch struct {
	BirthDate         *string      `json:"birth_date,omitempty" example:"1998-03-14"`
	Phone             *string      `json:"phone,omitempty"`
	PersonalEmail     *string      `json:"personal_email,omitempty"`
	Address           *string      `json:"address,omitempty"`
	EmergencyContact  *string      `json:"emergency_contact,omitempty"`
	EmergencyPhone    *string      `json:"emergency_phone,omitempty"`
	BloodType         *string      `json:"blood_type,omitempty"`
	SeasonsPlayed     *json.Number `json:"seasons_played,omitempty" swaggertype:"integer"`
	PlayingSince      *string      `json:"playing_since,omitempty" example:"2019"`
	MedicalConditions *string      `json:"medical_conditions,omitempty"`
	CedulaURL         *string      `json:"cedula_url,omitempty"`
	PhotoURL          *string      `json:"photo_url,omitempty"`
}

// PlayerProfile is the primary roster row in the profile vocabulary
type PlayerProfile struct {
	ID                int64        `json:"id"`
	Name              string       `json:"name"`
	JerseyNumber      int          `json:"jersey_number"`
	Position          string       `json:"position"`
	UserID            *int64       `json:"user_id"`
	TeamID            *int64       `json:"team_id"`
	Team              *TeamSummary `json:"teams"`
	PhotoURL          string       `json:"photo_url"`
	Phone             string       `json:"phone"`
	PersonalEmail     string       `json:"personal_email"`
	BirthDate         string       `json:"birth_date"`
	Address           string       `json:"address"`
	EmergencyContact  string       `json:"emergency_contact"`
	EmergencyPhone    string       `json:"emergency_phone"`
	BloodType         string       `json:"blood_type"`
	SeasonsPlayed     *int         `json:"seasons_played"`
	PlayingSince      string       `json:"playing_since"`
	MedicalConditions string       `json:"medical_conditions"`
	CedulaURL         string       `json:"cedula_url"`
	ProfileCompleted  bool         `json:"profile_completed"`
	AdminVerified     bool         `json:"admin_verified"`
}

// PlayerTeam is one team membership of the profile owner
type PlayerTeam struct {
	PlayerRowID  int64        `json:"player_row_id"`
	TeamID       int64        `json:"team_id"`
	Team         *TeamSummary `json:"team"`
	Position     string       `json:"position"`
	JerseyNumber int          `json:"jersey_number"`
}

// ProfileResponse carries the primary row and every team membership
type ProfileResponse struct {
	Profile     PlayerProfile
	PlayerTeams []PlayerTeam
}

// GetProfile returns the primary row (first with a team, else the oldest) and all memberships
func (s *ProfileService) GetProfile(userID int64) (*ProfileResponse, error) {
	if userID <= 0 {
		return nil, apperrors.ErrUserIDRequired
	}

	rows, err := s.playerRepo.GetAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrPlayerProfileNotFound
	}
	return buildProfile(rows), nil
}

// UpdateProfile applies patch to every row of the user and marks the profile completed
func (s *ProfileService) UpdateProfile(userID int64, patch *ProfilePatch) (*ProfileResponse, error) {
	if userID <= 0 {
		return nil, apperrors.ErrUserIDRequired
	}

	updates, err := patch.columns()
	if err != nil {
		return nil, err
	}

	affected, err := s.playerRepo.UpdateByUser(userID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.ErrPlayerNotFound
	}

	return s.GetProfile(userID)
}

// columns converts the patch into column updates
func (p *ProfilePatch) columns() (map[string]interface{}, error) {
	updates := map[string]interface{}{"profile_completed": true}

	setText := func(column string, v *string) {
		if v != nil && strings.TrimSpace(*v) != "" {
			updates[column] = plainText(*v)
		}
	}
	setText("phone", p.Phone)
	setText("personal_email", p.PersonalEmail)
	setText("address", p.Address)
	setText("emergency_contact_name", p.EmergencyContact)
	setText("emergency_contact_phone", p.EmergencyPhone)
	setText("blood_type", p.BloodType)
	setText("cedula_url", p.CedulaURL)
	setText("photo_url", p.PhotoURL)

	if p.MedicalConditions != nil {
		updates["medical_conditions"] = plainText(*p.MedicalConditions)
	}

	if p.BirthDate != nil && strings.TrimSpace(*p.BirthDate) != "" {
		date, err := parseDate("birth_date", *p.BirthDate)
		if err != nil {
			return nil, err
		}
		updates["birth_date"] = date
	}

	if p.PlayingSince != nil && strings.TrimSpace(*p.PlayingSince) != "" {
		value := strings.TrimSpace(*p.PlayingSince)
		if yearOnly.MatchString(value) {
			value += "-01-01"
		}
		date, err := parseDate("playing_since", value)
		if err != nil {
			return nil, err
		}
		updates["playing_since"] = date
	}

	if p.SeasonsPlayed != nil {
		seasons, err := p.SeasonsPlayed.Int64()
		if err != nil || seasons < 0 {
			return nil, apperrors.NewValidationError("seasons_played", "Temporadas jugadas invalidas")
		}
		updates["seasons_played"] = int(seasons)
	}

	return updates, nil
}

func buildProfile(rows []models.Player) *ProfileResponse {
	primary := &rows[0]
	for i := range rows {
		if rows[i].TeamID != nil {
			primary = &rows[i]
			break
		}
	}

	teams := make([]PlayerTeam, 0, len(rows))
	for _, row := range rows {
		if row.TeamID == nil || row.Team == nil {
			continue
		}
		teams = append(teams, PlayerTeam{
			PlayerRowID:  row.ID,
			TeamID:       *row.TeamID,
			Team:         toTeamSummary(row.Team),
			Position:     row.Position,
			JerseyNumber: row.JerseyNumber,
		})
	}

	return &ProfileResponse{Profile: toPlayerProfile(primary), PlayerTeams: teams}
}

func toPlayerProfile(p *models.Player) PlayerProfile {
	playingSince := formatDate(p.PlayingSince)
	if len(playingSince) >= 4 {
		playingSince = playingSince[:4]
	}
	return PlayerProfile{
		ID:                p.ID,
		Name:              p.Name,
		JerseyNumber:      p.JerseyNumber,
		Position:          p.Position,
		UserID:            p.UserID,
		TeamID:            p.TeamID,
		Team:              toTeamSummary(p.Team),
		PhotoURL:          p.PhotoURL,
		Phone:             p.Phone,
		PersonalEmail:     p.PersonalEmail,
		BirthDate:         formatDate(p.BirthDate),
		Address:           p.Address,
		EmergencyContact:  p.EmergencyContactName,
		EmergencyPhone:    p.EmergencyContactPhone,
		BloodType:         p.BloodType,
		SeasonsPlayed:     p.SeasonsPlayed,
		PlayingSince:      playingSince,
		MedicalConditions: p.MedicalConditions,
		CedulaURL:         p.CedulaURL,
		ProfileCompleted:  p.ProfileCompleted,
		AdminVerified:     p.AdminVerified,
	}
}
