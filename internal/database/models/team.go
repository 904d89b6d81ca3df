package models

// Team represents a league team. Category carries the branch prefix (femenil, varonil, mixto, teens).
type Team struct {
	BaseModel
	Name      string  `json:"name" gorm:"not null;size:100"`
	Category  *string `json:"category" gorm:"size:50"`
	CoachID   *int64  `json:"coach_id,omitempty" gorm:"index"`
	CoachName string  `json:"coach_name" gorm:"size:200"`
	LogoURL   string  `json:"logo_url" gorm:"size:500"`
	Color1    string  `json:"color1" gorm:"size:20"`
	Color2    string  `json:"color2" gorm:"size:20"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
