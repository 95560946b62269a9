package database

import (
	"investment-tracker/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Instrument{},
		&models.Portfolio{},
		&models.Asset{},
		&models.Trade{},
		&models.Order{},
		&models.Summary{},
	)
}
