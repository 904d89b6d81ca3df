package models

// JoinRequest asks a team's coach to admit a player, possibly moving them from another team.
// Rows are never deleted; terminal requests stay as history.
type JoinRequest struct {
	BaseModel
	PlayerUserID                int64             `json:"player_user_id" gorm:"not null;index:idx_join_requests_player_team"`
	PlayerID                    *int64            `json:"player_id"`
	TeamID                      int64             `json:"team_id" gorm:"not null;index:idx_join_requests_player_team"`
	PlayerName                  string            `json:"player_name" gorm:"not null;size:200"`
	Position                    string            `json:"position" gorm:"size:20"`
	JerseyNumber                int               `json:"jersey_number"`
	Phone                       string            `json:"phone" gorm:"size:30"`
	Message                     string            `json:"message"`
	Status                      JoinRequestStatus `json:"status" gorm:"type:varchar(30);not null;default:'pending';index"`
	IsTransfer                  bool              `json:"is_transfer" gorm:"not null;default:false"`
	FromTeamID                  *int64            `json:"from_team_id"`
	RequiresCoordinatorApproval bool              `json:"requires_coordinator_approval" gorm:"not null;default:false"`

	// Relationships
	Team *Team `json:"teams,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for JoinRequest
func (JoinRequest) TableName() string {
	return "team_join_requests"
}
