package database

import (
	"errors"

	"investment-tracker/models"

	"gorm.io/gorm"
)

func CreatePortfolio(db *gorm.DB, userID uint) (*models.Portfolio, error) {
	portfolio := models.Portfolio{
		UserID: userID,
		Type:   models.DefaultPortfolioType,
	}
	if err := db.Create(&portfolio).Error; err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// GetPortfolioByUser returns the user's portfolio, or nil when none exists.
func GetPortfolioByUser(db *gorm.DB, userID uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := db.Where("user_id = ?", userID).First(&portfolio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// DeletePortfolio removes the portfolio with its assets and trades in one
// transaction.
func DeletePortfolio(db *gorm.DB, portfolio *models.Portfolio) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("portfolio_id = ?", portfolio.ID).Delete(&models.Asset{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("portfolio_id = ?", portfolio.ID).Delete(&models.Trade{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(portfolio).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
