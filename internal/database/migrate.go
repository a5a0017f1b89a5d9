package database

import (
	"gorm.io/gorm"

	"github.com/leftovers-tracker/backend/internal/models"
)

// Migrate syncs the schema with the model definitions
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Leftover{},
	)
}
