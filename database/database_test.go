package database

import (
	"math/rand"
	"strings"
	"testing"

	"investment-tracker/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return db
}

const letters = "abcdefghijklmnopqrstuvwxyz"

func randomLowerString() string {
	var b strings.Builder
	for i := 0; i < 16; i++ {
		b.WriteByte(letters[rand.Intn(len(letters))])
	}
	return b.String()
}

func randomEmail() string {
	return randomLowerString() + "@" + randomLowerString() + ".com"
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user, err := CreateUser(db, models.UserCreate{
		Username: randomLowerString(),
		Email:    randomEmail(),
		Password: randomLowerString(),
	})
	require.NoError(t, err)
	return user
}

func createTestInstrument(t *testing.T, db *gorm.DB) *models.Instrument {
	t.Helper()
	instrument, err := CreateInstrument(db, models.InstrumentCreate{
		Name:     randomLowerString(),
		Exchange: "LSE",
		Symbol:   strings.ToUpper(randomLowerString()),
		Currency: "GBX",
	})
	require.NoError(t, err)
	return instrument
}

func createTestPortfolio(t *testing.T, db *gorm.DB, userID uint) *models.Portfolio {
	t.Helper()
	portfolio, err := CreatePortfolio(db, userID)
	require.NoError(t, err)
	return portfolio
}

func TestSeedInstruments(t *testing.T) {
	db := setupTestDB(t)

	instruments := make([]models.Instrument, 0, 7)
	for i := 0; i < 7; i++ {
		instruments = append(instruments, models.Instrument{
			Name:     randomLowerString(),
			Exchange: "LSE",
			Symbol:   strings.ToUpper(randomLowerString()),
			Currency: "GBX",
		})
	}

	require.NoError(t, SeedInstruments(db, instruments, 3))

	var count int64
	require.NoError(t, db.Model(&models.Instrument{}).Count(&count).Error)
	require.EqualValues(t, 7, count)

	// Seeding again must not duplicate existing symbols.
	require.NoError(t, SeedInstruments(db, instruments, 3))
	require.NoError(t, db.Model(&models.Instrument{}).Count(&count).Error)
	require.EqualValues(t, 7, count)
}

func TestSeedInstrumentsInvalidBatchSize(t *testing.T) {
	db := setupTestDB(t)
	require.ErrorIs(t, SeedInstruments(db, nil, 0), ErrInvalidBatchSize)
}
