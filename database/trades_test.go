package database

import (
	"testing"
	"time"

	"investment-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTrade(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	portfolio := createTestPortfolio(t, db, user.ID)
	instrument := createTestInstrument(t, db)
	asset := createTestAsset(t, db, portfolio, instrument)

	trade, err := CreateTrade(db, asset, models.NewDate(2025, time.August, 1), 2.5)
	require.NoError(t, err)

	assert.NotZero(t, trade.ID)
	assert.Equal(t, portfolio.ID, trade.PortfolioID)
	assert.Equal(t, instrument.ID, trade.InstrumentID)
	assert.Equal(t, asset.BuyDate.String(), trade.BuyDate.String())
	assert.Equal(t, asset.BuyPrice, trade.BuyPrice)
	assert.Equal(t, asset.Volume, trade.Volume)
	assert.Equal(t, asset.Currency, trade.Currency)
	assert.Equal(t, "01/08/2025", trade.SellDate.String())
	assert.Equal(t, 2.5, trade.SellPrice)

	// Closing consumes the asset.
	missing, err := GetAssetByID(db, asset.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListTradesByPortfolio(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	portfolio := createTestPortfolio(t, db, user.ID)
	instrument := createTestInstrument(t, db)

	first := createTestAsset(t, db, portfolio, instrument)
	second := createTestAsset(t, db, portfolio, instrument)
	_, err := CreateTrade(db, first, models.NewDate(2025, time.August, 1), 2)
	require.NoError(t, err)
	_, err = CreateTrade(db, second, models.NewDate(2025, time.August, 2), 3)
	require.NoError(t, err)

	trades, count, err := ListTradesByPortfolio(db, portfolio.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.Len(t, trades, 2)
}
