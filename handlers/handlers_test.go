package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"investment-tracker/config"
	"investment-tracker/database"
	"investment-tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest points the global connection at a fresh in-memory database and
// returns the full router.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	config.DB = db
	config.Rdb = nil

	return SetupRouter()
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), dst))
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

func createTestUser(t *testing.T, router *gin.Engine) models.UserPublic {
	t.Helper()
	recorder := performRequest(t, router, http.MethodPost, "/users", gin.H{
		"username": randomLowerString(),
		"email":    randomEmail(),
		"password": randomLowerString(),
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var user models.UserPublic
	decodeBody(t, recorder, &user)
	return user
}

func createTestInstrument(t *testing.T, router *gin.Engine) models.Instrument {
	t.Helper()
	recorder := performRequest(t, router, http.MethodPost, "/instruments", gin.H{
		"name":     randomLowerString(),
		"exchange": "LSE",
		"symbol":   strings.ToUpper(randomLowerString()),
		"currency": "GBX",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var instrument models.Instrument
	decodeBody(t, recorder, &instrument)
	return instrument
}
