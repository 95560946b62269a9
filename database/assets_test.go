package database

import (
	"testing"
	"time"

	"investment-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestAsset(t *testing.T, db *gorm.DB, portfolio *models.Portfolio, instrument *models.Instrument) *models.Asset {
	t.Helper()
	asset, err := CreateAsset(db, portfolio, instrument, models.AssetCreate{
		InstrumentID: instrument.ID,
		BuyDate:      models.NewDate(2025, time.July, 4),
		BuyPrice:     1,
		Volume:       1,
	})
	require.NoError(t, err)
	return asset
}

func TestCreateAsset(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	portfolio := createTestPortfolio(t, db, user.ID)
	instrument := createTestInstrument(t, db)

	asset := createTestAsset(t, db, portfolio, instrument)

	assert.NotZero(t, asset.ID)
	assert.Equal(t, portfolio.ID, asset.PortfolioID)
	assert.Equal(t, instrument.ID, asset.InstrumentID)
	assert.Equal(t, instrument.Currency, asset.Currency)
	assert.Equal(t, "04/07/2025", asset.BuyDate.String())
}

func TestAssetCurrencySnapshot(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	portfolio := createTestPortfolio(t, db, user.ID)
	instrument := createTestInstrument(t, db)

	asset := createTestAsset(t, db, portfolio, instrument)
	original := asset.Currency

	// A later instrument currency change must not touch the asset.
	require.NoError(t, UpdateInstrumentCurrency(db, instrument, "EUR"))

	reloaded, err := GetAssetByID(db, asset.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, original, reloaded.Currency)
}

func TestUpdateAsset(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	portfolio := createTestPortfolio(t, db, user.ID)
	instrument := createTestInstrument(t, db)
	asset := createTestAsset(t, db, portfolio, instrument)

	volume := 2.0
	require.NoError(t, UpdateAsset(db, asset, models.AssetUpdate{Volume: &volume}))
	assert.Equal(t, 2.0, asset.Volume)
	assert.Equal(t, 1.0, asset.BuyPrice)

	price := 3.5
	require.NoError(t, UpdateAsset(db, asset, models.AssetUpdate{BuyPrice: &price}))
	assert.Equal(t, 3.5, asset.BuyPrice)
	assert.Equal(t, 2.0, asset.Volume)
}

func TestListAndDeleteAssetsByPortfolio(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	portfolio := createTestPortfolio(t, db, user.ID)
	instrument := createTestInstrument(t, db)

	createTestAsset(t, db, portfolio, instrument)
	createTestAsset(t, db, portfolio, instrument)

	assets, count, err := ListAssetsByPortfolio(db, portfolio.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.Len(t, assets, 2)

	deleted, err := DeleteAssetsByPortfolio(db, portfolio.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	_, count, err = ListAssetsByPortfolio(db, portfolio.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
