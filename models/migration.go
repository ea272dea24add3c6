package models

import "time"

// SchemaMigration marks one applied schema version.
type SchemaMigration struct {
	Version   int    `gorm:"primaryKey; autoIncrement:false"`
	Name      string `gorm:"size:255"`
	AppliedAt time.Time
}
