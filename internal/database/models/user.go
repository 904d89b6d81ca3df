package models

// User is a login account. Players additionally own one or more Player rows.
type User struct {
	BaseModel
	Username     string     `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'coach'"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
