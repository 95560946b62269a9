package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRoute(t *testing.T) {
	router := setupTest(t)
	t.Setenv("JWT_SECRET", "test-secret")

	username := randomLowerString()
	email := randomEmail()
	password := randomLowerString()
	recorder := performRequest(t, router, http.MethodPost, "/users", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = performRequest(t, router, http.MethodPost, "/login", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	decodeBody(t, recorder, &tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// Login by username works too.
	recorder = performRequest(t, router, http.MethodPost, "/login", gin.H{
		"username": username,
		"password": password,
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestLoginRouteInvalid(t *testing.T) {
	router := setupTest(t)
	t.Setenv("JWT_SECRET", "test-secret")

	email := randomEmail()
	password := randomLowerString()
	recorder := performRequest(t, router, http.MethodPost, "/users", gin.H{
		"username": randomLowerString(),
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	// Neither email nor username.
	recorder = performRequest(t, router, http.MethodPost, "/login", gin.H{"password": password})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// Wrong password.
	recorder = performRequest(t, router, http.MethodPost, "/login", gin.H{
		"email":    email,
		"password": randomLowerString(),
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Unknown user.
	recorder = performRequest(t, router, http.MethodPost, "/login", gin.H{
		"email":    randomEmail(),
		"password": password,
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHealthRoute(t *testing.T) {
	router := setupTest(t)

	recorder := performRequest(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "OK")
}
