package database

import (
	"testing"

	"investment-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSummary(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)

	summary, err := CreateSummary(db, user.ID)
	require.NoError(t, err)

	assert.NotZero(t, summary.ID)
	assert.Equal(t, user.ID, summary.UserID)
	assert.Nil(t, summary.EndingMarketValue)
	assert.Nil(t, summary.BeginningMarketValue)
	assert.Nil(t, summary.ProfitLoss)

	byUser, err := GetSummaryByUser(db, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byUser)
	assert.Equal(t, summary.ID, byUser.ID)
}

func TestUpdateSummary(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	summary, err := CreateSummary(db, user.ID)
	require.NoError(t, err)

	ending := 120.5
	profit := 20.5
	require.NoError(t, UpdateSummary(db, summary, models.SummaryUpdate{
		EndingMarketValue: &ending,
		ProfitLoss:        &profit,
	}))

	require.NotNil(t, summary.EndingMarketValue)
	assert.Equal(t, 120.5, *summary.EndingMarketValue)
	require.NotNil(t, summary.ProfitLoss)
	assert.Equal(t, 20.5, *summary.ProfitLoss)
	assert.Nil(t, summary.BeginningMarketValue)
}

func TestDeleteSummary(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	summary, err := CreateSummary(db, user.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteSummary(db, summary))

	missing, err := GetSummaryByUser(db, user.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
