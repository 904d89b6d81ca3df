package models

import (
	"gorm.io/datatypes"
)

// Player is one roster membership of a person. A user playing for several
// teams owns several rows carrying the same profile fields.
type Player struct {
	BaseModel
	Name                  string          `json:"name" gorm:"not null;size:200"`
	JerseyNumber          int             `json:"jersey_number"`
	Position              string          `json:"position" gorm:"size:20"`
	UserID                *int64          `json:"user_id" gorm:"index;uniqueIndex:idx_players_user_team"`
	TeamID                *int64          `json:"team_id" gorm:"index;uniqueIndex:idx_players_user_team"`
	PhotoURL              string          `json:"photo_url" gorm:"size:500"`
	Phone                 string          `json:"phone" gorm:"size:30"`
	PersonalEmail         string          `json:"personal_email" gorm:"size:255"`
	BirthDate             *datatypes.Date `json:"birth_date"`
	Address               string          `json:"address" gorm:"size:500"`
	EmergencyContactName  string          `json:"emergency_contact_name" gorm:"size:200"`
	EmergencyContactPhone string          `json:"emergency_contact_phone" gorm:"size:30"`
	BloodType             string          `json:"blood_type" gorm:"size:5"`
	SeasonsPlayed         *int            `json:"seasons_played"`
	PlayingSince          *datatypes.Date `json:"playing_since"`
	MedicalConditions     string          `json:"medical_conditions"`
	CedulaURL             string          `json:"cedula_url" gorm:"size:500"`
	ProfileCompleted      bool            `json:"profile_completed" gorm:"not null;default:false"`
	AdminVerified         bool            `json:"admin_verified" gorm:"not null;default:false"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
