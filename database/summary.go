package database

import (
	"errors"

	"investment-tracker/models"

	"gorm.io/gorm"
)

// CreateSummary inserts an empty summary for the user; the three figures stay
// null until the first update.
func CreateSummary(db *gorm.DB, userID uint) (*models.Summary, error) {
	summary := models.Summary{UserID: userID}
	if err := db.Create(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetSummaryByUser returns the user's summary, or nil when none exists.
func GetSummaryByUser(db *gorm.DB, userID uint) (*models.Summary, error) {
	var summary models.Summary
	err := db.Where("user_id = ?", userID).First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// UpdateSummary patches the supplied fields only and reloads the record.
func UpdateSummary(db *gorm.DB, summary *models.Summary, in models.SummaryUpdate) error {
	updates := make(map[string]interface{})
	if in.EndingMarketValue != nil {
		updates["ending_market_value"] = *in.EndingMarketValue
	}
	if in.BeginningMarketValue != nil {
		updates["beginning_market_value"] = *in.BeginningMarketValue
	}
	if in.ProfitLoss != nil {
		updates["profit_loss"] = *in.ProfitLoss
	}

	if err := db.Model(summary).Updates(updates).Error; err != nil {
		return err
	}
	return db.First(summary, summary.ID).Error
}

func DeleteSummary(db *gorm.DB, summary *models.Summary) error {
	return db.Delete(summary).Error
}
