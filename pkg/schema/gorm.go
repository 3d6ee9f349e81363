package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Substance{},
		&RegistryMapping{},
		&CatalogMapping{},
		&LoadRun{},
	}
}

// Migrate runs GORM AutoMigrate to create the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
