package models

// GameAttendance records that a player checked in to a game. At most one row per (game, player).
type GameAttendance struct {
	BaseModel
	GameID   int64 `json:"game_id" gorm:"not null;uniqueIndex:idx_attendance_game_player"`
	PlayerID int64 `json:"player_id" gorm:"not null;uniqueIndex:idx_attendance_game_player;index"`
	Attended bool  `json:"attended" gorm:"not null;default:false"`

	// Relationships
	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
}

// TableName returns the table name for GameAttendance
func (GameAttendance) TableName() string {
	return "game_attendance"
}
