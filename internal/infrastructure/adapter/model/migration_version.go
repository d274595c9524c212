package model

import (
	"time"
)

// MigrationVersion records a schema version applied by the migration manager
type MigrationVersion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Version     string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	AppliedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for MigrationVersion
func (MigrationVersion) TableName() string {
	return "migration_versions"
}
