package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"flagfootball-backend/internal/database/models"

	"gorm.io/datatypes"
)

var sequence atomic.Int64

func next() int64 { return sequence.Add(1) }

// StringPtr returns a pointer to s
func StringPtr(s string) *string { return &s }

// Int64Ptr returns a pointer to v
func Int64Ptr(v int64) *int64 { return &v }

// IntPtr returns a pointer to v
func IntPtr(v int) *int { return &v }

// DatePtr returns a pointer to the calendar date y-m-d
func DatePtr(y int, m time.Month, d int) *datatypes.Date {
	date := datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &date
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// Create creates a unique coach account. PasswordHash is not a real bcrypt hash.
func (f *UserFactory) Create() *models.User {
	n := next()
	return &models.User{
		Username:     fmt.Sprintf("coach%d", n),
		Email:        fmt.Sprintf("coach%d@liga.test", n),
		PasswordHash: "not-a-hash",
		Role:         models.UserRoleCoach,
		Status:       models.UserStatusActive,
	}
}

// Player creates a unique player account
func (f *UserFactory) Player() *models.User {
	user := f.Create()
	user.Username = fmt.Sprintf("player%d", next())
	user.Email = user.Username + "@liga.test"
	user.Role = models.UserRolePlayer
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// Create creates a team in the varonil branch
func (f *TeamFactory) Create() *models.Team {
	return f.WithCategory(fmt.Sprintf("Halcones %d", next()), "varonil-a")
}

// WithCategory creates a team with the given name and category
func (f *TeamFactory) WithCategory(name, category string) *models.Team {
	return &models.Team{
		Name:     name,
		Category: StringPtr(category),
		LogoURL:  "https://cdn.liga.test/logo.png",
		Color1:   "#112233",
		Color2:   "#ffffff",
	}
}

// WithCoach creates a team coached by coachID
func (f *TeamFactory) WithCoach(coachID int64) *models.Team {
	team := f.Create()
	team.CoachID = Int64Ptr(coachID)
	return team
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// Create creates a teamless player row with a filled profile
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		Name:                  fmt.Sprintf("Jugador %d", next()),
		JerseyNumber:          7,
		Position:              "QB",
		Phone:                 "5551234567",
		PersonalEmail:         "jugador@correo.test",
		BirthDate:             DatePtr(1998, time.March, 14),
		Address:               "Calle 1",
		EmergencyContactName:  "Maria",
		EmergencyContactPhone: "5557654321",
		BloodType:             "O+",
		SeasonsPlayed:         IntPtr(3),
		PlayingSince:          DatePtr(2019, time.January, 1),
		MedicalConditions:     "Ninguna",
		CedulaURL:             "https://cdn.liga.test/cedula.png",
		ProfileCompleted:      true,
	}
}

// ForUser creates a player row owned by userID, optionally on teamID
func (f *PlayerFactory) ForUser(userID int64, teamID *int64) *models.Player {
	player := f.Create()
	player.UserID = Int64Ptr(userID)
	player.TeamID = teamID
	return player
}

// JoinRequestFactory provides methods to create test JoinRequest data
type JoinRequestFactory struct{}

// Create creates a pending join request
func (f *JoinRequestFactory) Create(playerUserID, teamID int64) *models.JoinRequest {
	return &models.JoinRequest{
		PlayerUserID: playerUserID,
		TeamID:       teamID,
		PlayerName:   "Jugador Solicitante",
		Position:     "WR",
		JerseyNumber: 11,
		Status:       models.JoinRequestStatusPending,
	}
}

// GameFactory provides methods to create test Game data
type GameFactory struct{}

// Create creates a scheduled game
func (f *GameFactory) Create() *models.Game {
	return &models.Game{
		HomeTeam: "Halcones",
		AwayTeam: "Lobos",
		GameDate: datatypes.Date(time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)),
		GameTime: "10:00",
		Venue:    "Parque Central",
		Field:    "1",
		Category: "varonil",
		Status:   models.GameStatusScheduled,
	}
}

// FactorySet holds all factories for easy access
type FactorySet struct {
	User        *UserFactory
	Team        *TeamFactory
	Player      *PlayerFactory
	JoinRequest *JoinRequestFactory
	Game        *GameFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        &UserFactory{},
		Team:        &TeamFactory{},
		Player:      &PlayerFactory{},
		JoinRequest: &JoinRequestFactory{},
		Game:        &GameFactory{},
	}
}
