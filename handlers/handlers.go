package handlers

import (
	"net/http"
	"strconv"

	"investment-tracker/config"
	"investment-tracker/database"
	"investment-tracker/models"

	"github.com/gin-gonic/gin"
)

// Every validation failure is a 400 with a short message; "not found",
// "conflict" and "bad input" are not distinguished by status code.

func databaseError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error", "details": err.Error()})
}

// pathID parses a positive integer path parameter, answering 400 when it is
// malformed.
func pathID(c *gin.Context, name, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return 0, false
	}
	return uint(id), true
}

// userFromPath resolves the :user_id parameter. The first missing parent
// short-circuits the request, so callers bail out on nil.
func userFromPath(c *gin.Context) *models.User {
	id, ok := pathID(c, "user_id", "Invalid user id.")
	if !ok {
		return nil
	}

	user, err := database.GetUserByID(config.DB, id)
	if err != nil {
		databaseError(c, err)
		return nil
	}
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No user exists with this id."})
		return nil
	}
	return user
}

// portfolioForUser resolves the user's portfolio, answering 400 with the
// given message when there is none.
func portfolioForUser(c *gin.Context, user *models.User, message string) *models.Portfolio {
	portfolio, err := database.GetPortfolioByUser(config.DB, user.ID)
	if err != nil {
		databaseError(c, err)
		return nil
	}
	if portfolio == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return nil
	}
	return portfolio
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Investment Tracker API is running",
	})
}
