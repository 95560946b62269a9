package handlers

import (
	"net/http"

	"investment-tracker/config"
	"investment-tracker/database"

	"github.com/gin-gonic/gin"
)

func GetPortfolio(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}

	portfolio := portfolioForUser(c, user, "No portfolio associated with the user.")
	if portfolio == nil {
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// CreatePortfolio creates the user's single portfolio; a second create is a
// client error.
func CreatePortfolio(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}

	existing, err := database.GetPortfolioByUser(config.DB, user.ID)
	if err != nil {
		databaseError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already has a portfolio."})
		return
	}

	portfolio, err := database.CreatePortfolio(config.DB, user.ID)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// DeletePortfolio removes the portfolio together with its assets and trades.
func DeletePortfolio(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}

	portfolio := portfolioForUser(c, user, "No portfolio associated with user.")
	if portfolio == nil {
		return
	}

	if err := database.DeletePortfolio(config.DB, portfolio); err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}
