package database

import (
	"errors"

	"investment-tracker/models"

	"gorm.io/gorm"
)

// CreateAsset opens a position in the portfolio. The asset records the
// instrument's currency as it stands now.
func CreateAsset(db *gorm.DB, portfolio *models.Portfolio, instrument *models.Instrument, in models.AssetCreate) (*models.Asset, error) {
	asset := models.Asset{
		PortfolioID:  portfolio.ID,
		InstrumentID: instrument.ID,
		BuyDate:      in.BuyDate,
		BuyPrice:     in.BuyPrice,
		Volume:       in.Volume,
		Currency:     instrument.Currency,
	}
	if err := db.Create(&asset).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

// GetAssetByID returns the matching asset, or nil when none exists.
func GetAssetByID(db *gorm.DB, id uint) (*models.Asset, error) {
	var asset models.Asset
	err := db.First(&asset, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func ListAssetsByPortfolio(db *gorm.DB, portfolioID uint) ([]models.Asset, int64, error) {
	var assets []models.Asset
	if err := db.Where("portfolio_id = ?", portfolioID).Find(&assets).Error; err != nil {
		return nil, 0, err
	}
	return assets, int64(len(assets)), nil
}

// UpdateAsset patches the supplied fields only and reloads the record.
func UpdateAsset(db *gorm.DB, asset *models.Asset, in models.AssetUpdate) error {
	updates := make(map[string]interface{})
	if in.BuyPrice != nil {
		updates["buy_price"] = *in.BuyPrice
	}
	if in.Volume != nil {
		updates["volume"] = *in.Volume
	}

	if err := db.Model(asset).Updates(updates).Error; err != nil {
		return err
	}
	return db.First(asset, asset.ID).Error
}

// DeleteAssetsByPortfolio removes every asset in the portfolio and reports
// how many rows went.
func DeleteAssetsByPortfolio(db *gorm.DB, portfolioID uint) (int64, error) {
	result := db.Where("portfolio_id = ?", portfolioID).Delete(&models.Asset{})
	return result.RowsAffected, result.Error
}
