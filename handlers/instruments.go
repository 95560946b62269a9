package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"investment-tracker/config"
	"investment-tracker/database"
	"investment-tracker/models"

	"github.com/gin-gonic/gin"
)

const priceCacheExpiration = 5 * time.Minute

func priceCacheKey(symbol string) string {
	return fmt.Sprintf("instrument:%s:price", symbol)
}

// cacheClosePrice writes the latest close through to Redis. A nil client
// means caching is disabled.
func cacheClosePrice(symbol string, close float64) {
	if config.Rdb == nil {
		return
	}
	config.Rdb.Set(config.Ctx, priceCacheKey(symbol), close, priceCacheExpiration)
}

// GetInstruments lists instruments with all supplied filters combined with AND.
func GetInstruments(c *gin.Context) {
	filter := models.InstrumentFilter{
		Name:     c.Query("name"),
		Exchange: c.Query("exchange"),
		Symbol:   c.Query("symbol"),
		Currency: c.Query("currency"),
	}

	instruments, count, err := database.ListInstruments(config.DB, filter)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.InstrumentsPublic{Data: instruments, Count: count})
}

// CreateInstrument registers a new instrument; the symbol must be unused.
func CreateInstrument(c *gin.Context) {
	var input models.InstrumentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := database.GetInstrumentBySymbol(config.DB, input.Symbol)
	if err != nil {
		databaseError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Instrument with symbol already exists."})
		return
	}

	instrument, err := database.CreateInstrument(config.DB, input)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, instrument)
}

func instrumentFromPath(c *gin.Context) *models.Instrument {
	id, ok := pathID(c, "id", "Invalid instrument id.")
	if !ok {
		return nil
	}

	instrument, err := database.GetInstrumentByID(config.DB, id)
	if err != nil {
		databaseError(c, err)
		return nil
	}
	if instrument == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No instrument exists with this id."})
		return nil
	}
	return instrument
}

func GetInstrumentByID(c *gin.Context) {
	instrument := instrumentFromPath(c)
	if instrument == nil {
		return
	}
	c.JSON(http.StatusOK, instrument)
}

// UpdateInstrument patches the currency and/or the OHLC prices. Prices arrive
// as [open, high, low, close].
func UpdateInstrument(c *gin.Context) {
	instrument := instrumentFromPath(c)
	if instrument == nil {
		return
	}

	var input models.InstrumentUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Currency == nil && input.Prices == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No currency or prices provided to update instrument."})
		return
	}
	if input.Prices != nil && len(input.Prices) != 4 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prices must contain open, high, low and close values."})
		return
	}

	if input.Currency != nil {
		if err := database.UpdateInstrumentCurrency(config.DB, instrument, *input.Currency); err != nil {
			databaseError(c, err)
			return
		}
	}
	if input.Prices != nil {
		if err := database.UpdateInstrumentPrices(config.DB, instrument, input.Prices[0], input.Prices[1], input.Prices[2], input.Prices[3]); err != nil {
			databaseError(c, err)
			return
		}
		cacheClosePrice(instrument.Symbol, input.Prices[3])
	}

	c.JSON(http.StatusOK, instrument)
}

// GetInstrumentPrice serves the latest close, preferring the Redis cache and
// falling back to the stored close price.
func GetInstrumentPrice(c *gin.Context) {
	instrument := instrumentFromPath(c)
	if instrument == nil {
		return
	}

	if config.Rdb != nil {
		cached, err := config.Rdb.Get(config.Ctx, priceCacheKey(instrument.Symbol)).Result()
		if err == nil {
			price, err := strconv.ParseFloat(cached, 64)
			if err == nil {
				c.JSON(http.StatusOK, gin.H{"symbol": instrument.Symbol, "price": price})
				return
			}
		}
	}

	if instrument.Close == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No price recorded for this instrument."})
		return
	}

	cacheClosePrice(instrument.Symbol, *instrument.Close)
	c.JSON(http.StatusOK, gin.H{"symbol": instrument.Symbol, "price": *instrument.Close})
}
