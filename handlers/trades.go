package handlers

import (
	"net/http"

	"investment-tracker/config"
	"investment-tracker/database"
	"investment-tracker/models"

	"github.com/gin-gonic/gin"
)

func GetTrades(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}
	portfolio := portfolioForUser(c, user, noPortfolioMessage)
	if portfolio == nil {
		return
	}

	trades, count, err := database.ListTradesByPortfolio(config.DB, portfolio.ID)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TradesPublic{Data: trades, Count: count})
}

// CreateTrade closes an asset into a trade; the asset row is consumed.
func CreateTrade(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}
	portfolio := portfolioForUser(c, user, noPortfolioMessage)
	if portfolio == nil {
		return
	}

	var input models.TradeCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := database.GetAssetByID(config.DB, input.AssetID)
	if err != nil {
		databaseError(c, err)
		return
	}
	if asset == nil || asset.PortfolioID != portfolio.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No asset with asset id."})
		return
	}

	trade, err := database.CreateTrade(config.DB, asset, input.SellDate, input.SellPrice)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, trade)
}
