package models

// PlayerGameStat holds one player's counters for one game
type PlayerGameStat struct {
	BaseModel
	GameID        int64 `json:"game_id" gorm:"not null;index"`
	PlayerID      int64 `json:"player_id" gorm:"not null;index"`
	Touchdowns    int   `json:"touchdowns" gorm:"not null;default:0"`
	Interceptions int   `json:"interceptions" gorm:"not null;default:0"`
	Sacks         int   `json:"sacks" gorm:"not null;default:0"`
	ExtraPoints   int   `json:"extra_points" gorm:"not null;default:0"`
	Flags         int   `json:"flags" gorm:"not null;default:0"`
}

// TableName returns the table name for PlayerGameStat
func (PlayerGameStat) TableName() string {
	return "player_game_stats"
}

// StatTotals is the aggregate of a player's PlayerGameStat rows
type StatTotals struct {
	Touchdowns    int `json:"touchdowns"`
	Interceptions int `json:"interceptions"`
	Sacks         int `json:"sacks"`
	ExtraPoints   int `json:"extra_points"`
	Flags         int `json:"flags"`
}
