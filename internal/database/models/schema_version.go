package models

import (
	"time"
)

// SchemaVersion records which schema revision has been applied to the database
type SchemaVersion struct {
	Version   int       `json:"version" gorm:"primaryKey;autoIncrement:false"`
	AppliedAt time.Time `json:"applied_at" gorm:"not null"`
}

// TableName returns the table name for SchemaVersion
func (SchemaVersion) TableName() string {
	return "schema_versions"
}
