package database

import (
	"investment-tracker/models"

	"gorm.io/gorm"
)

// CreateTrade closes an asset: the trade is inserted and the asset deleted in
// one transaction, so a position is never open and closed at the same time.
func CreateTrade(db *gorm.DB, asset *models.Asset, sellDate models.Date, sellPrice float64) (*models.Trade, error) {
	trade := models.Trade{
		PortfolioID:  asset.PortfolioID,
		InstrumentID: asset.InstrumentID,
		BuyDate:      asset.BuyDate,
		BuyPrice:     asset.BuyPrice,
		SellDate:     sellDate,
		SellPrice:    sellPrice,
		Volume:       asset.Volume,
		Currency:     asset.Currency,
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&trade).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Delete(asset).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &trade, nil
}

func ListTradesByPortfolio(db *gorm.DB, portfolioID uint) ([]models.Trade, int64, error) {
	var trades []models.Trade
	if err := db.Where("portfolio_id = ?", portfolioID).Find(&trades).Error; err != nil {
		return nil, 0, err
	}
	return trades, int64(len(trades)), nil
}
