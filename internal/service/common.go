package service

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"flagfootball-backend/internal/database/models"
	apperrors "flagfootball-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var strictPolicy = bluemonday.StrictPolicy()

// TeamSummary is the team blob embedded in player, request and QR responses
type TeamSummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  *string `json:"category"`
	LogoURL   string  `json:"logo_url"`
	Color1    string  `json:"color1,omitempty"`
	Color2    string  `json:"color2,omitempty"`
	CoachName string  `json:"coach_name,omitempty"`
}

// PlayerSummary is the short player blob used by QR and attendance responses
type PlayerSummary struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	JerseyNumber int          `json:"jersey_number"`
	Position     string       `json:"position"`
	PhotoURL     string       `json:"photo_url"`
	TeamID       *int64       `json:"team_id"`
	Team         *TeamSummary `json:"teams"`
}

// GameSummary describes a game for scanners and listings
type GameSummary struct {
	ID       int64             `json:"id"`
	HomeTeam string            `json:"home_team"`
	AwayTeam string            `json:"away_team"`
	GameDate string            `json:"game_date"`
	GameTime string            `json:"game_time"`
	Venue    string            `json:"venue"`
	Field    string            `json:"field"`
	Category string            `json:"category"`
	Status   models.GameStatus `json:"status"`
}

func toTeamSummary(team *models.Team) *TeamSummary {
	if team == nil {
		return nil
	}
	return &TeamSummary{
		ID:        team.ID,
		Name:      team.Name,
		Category:  team.Category,
		LogoURL:   team.LogoURL,
		Color1:    team.Color1,
		Color2:    team.Color2,
		CoachName: team.CoachName,
	}
}

func toPlayerSummary(player *models.Player) PlayerSummary {
	return PlayerSummary{
		ID:           player.ID,
		Name:         player.Name,
		JerseyNumber: player.JerseyNumber,
		Position:     player.Position,
		PhotoURL:     player.PhotoURL,
		TeamID:       player.TeamID,
		Team:         toTeamSummary(player.Team),
	}
}

func toGameSummary(game *models.Game) GameSummary {
	return GameSummary{
		ID:       game.ID,
		HomeTeam: game.HomeTeam,
		AwayTeam: game.AwayTeam,
		GameDate: time.Time(game.GameDate).Format(dateLayout),
		GameTime: game.GameTime,
		Venue:    game.Venue,
		Field:    game.Field,
		Category: game.Category,
		Status:   game.Status,
	}
}

// plainText strips markup from user supplied free text
func plainText(s string) string {
	sanitized := strictPolicy.Sanitize(strings.TrimSpace(s))
	if unescaped := html.UnescapeString(sanitized); !strings.ContainsAny(unescaped, "<>") {
		return unescaped
	}
	return sanitized
}

func formatDate(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format(dateLayout)
}

func parseDate(field, value string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return datatypes.Date{}, apperrors.NewValidationError(field, "Fecha invalida: "+value)
	}
	return datatypes.Date(t), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// translateValidation maps validator failures to client errors. A missing field yields
// its "Field.required" override or fallback; any other rule yields its override or fallback.
func translateValidation(err error, fallback error, overrides map[string]error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			if e, ok := overrides[fe.Field()+".required"]; ok {
				return e
			}
			return fallback
		}
	}
	for _, fe := range verrs {
		if e, ok := overrides[fe.Field()+"."+fe.Tag()]; ok {
			return e
		}
	}
	return fallback
}
