package handlers

import (
	"net/http"

	"investment-tracker/config"
	"investment-tracker/database"
	"investment-tracker/models"

	"github.com/gin-gonic/gin"
)

const noPortfolioMessage = "User does not have a portfolio, please create a portfolio first."

func GetAssets(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}
	portfolio := portfolioForUser(c, user, noPortfolioMessage)
	if portfolio == nil {
		return
	}

	assets, count, err := database.ListAssetsByPortfolio(config.DB, portfolio.ID)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AssetsPublic{Data: assets, Count: count})
}

// CreateAsset opens a position. The parent portfolio and the instrument must
// both exist; the asset records the instrument's current currency.
func CreateAsset(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}
	portfolio := portfolioForUser(c, user, noPortfolioMessage)
	if portfolio == nil {
		return
	}

	var input models.AssetCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	instrument, err := database.GetInstrumentByID(config.DB, input.InstrumentID)
	if err != nil {
		databaseError(c, err)
		return
	}
	if instrument == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instrument id entered."})
		return
	}

	asset, err := database.CreateAsset(config.DB, portfolio, instrument, input)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// DeleteAssets removes every asset in the user's portfolio.
func DeleteAssets(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}
	portfolio := portfolioForUser(c, user, noPortfolioMessage)
	if portfolio == nil {
		return
	}

	deleted, err := database.DeleteAssetsByPortfolio(config.DB, portfolio.ID)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assets deleted successfully", "count": deleted})
}

// assetFromPath resolves :asset_id within the user's portfolio.
func assetFromPath(c *gin.Context, portfolio *models.Portfolio) *models.Asset {
	id, ok := pathID(c, "asset_id", "Invalid asset id.")
	if !ok {
		return nil
	}

	asset, err := database.GetAssetByID(config.DB, id)
	if err != nil {
		databaseError(c, err)
		return nil
	}
	if asset == nil || asset.PortfolioID != portfolio.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No asset with this id in portfolio."})
		return nil
	}
	return asset
}

func GetAssetByID(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}
	portfolio := portfolioForUser(c, user, noPortfolioMessage)
	if portfolio == nil {
		return
	}
	asset := assetFromPath(c, portfolio)
	if asset == nil {
		return
	}
	c.JSON(http.StatusOK, asset)
}

// UpdateAsset patches the buy price and/or volume. At least one field must be
// supplied.
func UpdateAsset(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}
	portfolio := portfolioForUser(c, user, noPortfolioMessage)
	if portfolio == nil {
		return
	}
	asset := assetFromPath(c, portfolio)
	if asset == nil {
		return
	}

	var input models.AssetUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.BuyPrice == nil && input.Volume == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No buy price or volume provided to update asset."})
		return
	}

	if err := database.UpdateAsset(config.DB, asset, input); err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}
