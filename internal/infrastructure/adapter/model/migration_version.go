package model

import "time"

// MigrationVersion is one row of the schema history; the newest row is the current version
type MigrationVersion struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	Version         string    `gorm:"type:varchar(20);not null;index"`
	PreviousVersion string    `gorm:"type:varchar(20);not null;default:''"`
	AppliedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Details         string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "escrow_schema_versions"
}
