package database

import (
	"fmt"

	"investment-tracker/models"

	"gorm.io/gorm"
)

var ErrInvalidBatchSize = fmt.Errorf("batch size must be positive")

// SeedInstruments inserts an initial instrument universe in batches, skipping
// symbols that already exist so the seed can run on every startup.
func SeedInstruments(db *gorm.DB, instruments []models.Instrument, batchSize int) error {
	if batchSize <= 0 {
		return ErrInvalidBatchSize
	}

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	pending := make([]models.Instrument, 0, len(instruments))
	for _, instrument := range instruments {
		var count int64
		if err := tx.Model(&models.Instrument{}).Where("symbol = ?", instrument.Symbol).Count(&count).Error; err != nil {
			tx.Rollback()
			return err
		}
		if count == 0 {
			pending = append(pending, instrument)
		}
	}

	for i := 0; i < len(pending); i += batchSize {
		end := i + batchSize
		if end > len(pending) {
			end = len(pending)
		}

		chunk := pending[i:end]
		if err := tx.Create(&chunk).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("batch insert failed: %w", err)
		}
	}

	return tx.Commit().Error
}
