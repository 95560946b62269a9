package database

import (
	"errors"

	"investment-tracker/models"

	"gorm.io/gorm"
)

func CreateInstrument(db *gorm.DB, in models.InstrumentCreate) (*models.Instrument, error) {
	instrument := models.Instrument{
		Name:     in.Name,
		Exchange: in.Exchange,
		Symbol:   in.Symbol,
		Currency: in.Currency,
	}
	if err := db.Create(&instrument).Error; err != nil {
		return nil, err
	}
	return &instrument, nil
}

// GetInstrumentBySymbol returns the matching instrument, or nil when none exists.
func GetInstrumentBySymbol(db *gorm.DB, symbol string) (*models.Instrument, error) {
	var instrument models.Instrument
	err := db.Where("symbol = ?", symbol).First(&instrument).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &instrument, nil
}

// GetInstrumentByID returns the matching instrument, or nil when none exists.
func GetInstrumentByID(db *gorm.DB, id uint) (*models.Instrument, error) {
	var instrument models.Instrument
	err := db.First(&instrument, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &instrument, nil
}

// ListInstruments combines all supplied filters with AND. Count reflects the
// filtered set.
func ListInstruments(db *gorm.DB, filter models.InstrumentFilter) ([]models.Instrument, int64, error) {
	filtered := func() *gorm.DB {
		query := db.Model(&models.Instrument{})
		if filter.Name != "" {
			query = query.Where("name = ?", filter.Name)
		}
		if filter.Exchange != "" {
			query = query.Where("exchange = ?", filter.Exchange)
		}
		if filter.Symbol != "" {
			query = query.Where("symbol = ?", filter.Symbol)
		}
		if filter.Currency != "" {
			query = query.Where("currency = ?", filter.Currency)
		}
		return query
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var instruments []models.Instrument
	if err := filtered().Find(&instruments).Error; err != nil {
		return nil, 0, err
	}
	return instruments, count, nil
}

// UpdateInstrumentCurrency sets the currency and reloads the record.
func UpdateInstrumentCurrency(db *gorm.DB, instrument *models.Instrument, currency string) error {
	if err := db.Model(instrument).Update("currency", currency).Error; err != nil {
		return err
	}
	return db.First(instrument, instrument.ID).Error
}

// UpdateInstrumentPrices sets all four OHLC prices and reloads the record.
func UpdateInstrumentPrices(db *gorm.DB, instrument *models.Instrument, open, high, low, close float64) error {
	updates := map[string]interface{}{
		"open":  open,
		"high":  high,
		"low":   low,
		"close": close,
	}
	if err := db.Model(instrument).Updates(updates).Error; err != nil {
		return err
	}
	return db.First(instrument, instrument.ID).Error
}

func DeleteInstrument(db *gorm.DB, instrument *models.Instrument) error {
	return db.Delete(instrument).Error
}
