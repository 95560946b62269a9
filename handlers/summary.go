package handlers

import (
	"net/http"

	"investment-tracker/config"
	"investment-tracker/database"
	"investment-tracker/models"

	"github.com/gin-gonic/gin"
)

func summaryForUser(c *gin.Context, user *models.User) *models.Summary {
	summary, err := database.GetSummaryByUser(config.DB, user.ID)
	if err != nil {
		databaseError(c, err)
		return nil
	}
	if summary == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No summary found with user."})
		return nil
	}
	return summary
}

func GetSummary(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}
	summary := summaryForUser(c, user)
	if summary == nil {
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CreateSummary creates the user's single summary with all figures null.
func CreateSummary(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}

	existing, err := database.GetSummaryByUser(config.DB, user.ID)
	if err != nil {
		databaseError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already has a summary."})
		return
	}

	summary, err := database.CreateSummary(config.DB, user.ID)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UpdateSummary patches the market-value and profit/loss figures. At least
// one field must be supplied.
func UpdateSummary(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}
	summary := summaryForUser(c, user)
	if summary == nil {
		return
	}

	var input models.SummaryUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.EndingMarketValue == nil && input.BeginningMarketValue == nil && input.ProfitLoss == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No summary fields provided to update summary."})
		return
	}

	if err := database.UpdateSummary(config.DB, summary, input); err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
