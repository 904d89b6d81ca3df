package models

import (
	"gorm.io/datatypes"
)

// Game is a scheduled league match
type Game struct {
	BaseModel
	HomeTeam string         `json:"home_team" gorm:"not null;size:100"`
	AwayTeam string         `json:"away_team" gorm:"not null;size:100"`
	GameDate datatypes.Date `json:"game_date" gorm:"not null;index"`
	GameTime string         `json:"game_time" gorm:"size:10"`
	Venue    string         `json:"venue" gorm:"size:200"`
	Field    string         `json:"field" gorm:"size:50"`
	Category string         `json:"category" gorm:"size:50"`
	Status   GameStatus     `json:"status" gorm:"type:varchar(20);not null;default:'scheduled';index"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}
