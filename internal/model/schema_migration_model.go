package model

import "time"

// SchemaMigration records an applied schema step.
type SchemaMigration struct {
	Id        string    `gorm:"type:varchar(64);primaryKey"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}
