package models

import (
	"time"
)

// BaseModel provides the numeric primary key and timestamps shared by all tables
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
