package handlers

import (
	"net/http"
	"strconv"

	"investment-tracker/config"
	"investment-tracker/database"
	"investment-tracker/models"

	"github.com/gin-gonic/gin"
)

// GetOrders lists the user's orders. instrument_id, start_date, end_date and
// type filters combine with AND; date bounds are DD/MM/YYYY and inclusive.
func GetOrders(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}

	var filter models.OrderFilter
	if raw := c.Query("instrument_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instrument id."})
			return
		}
		filter.InstrumentID = uint(id)
	}
	if raw := c.Query("start_date"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.StartDate = &date
	}
	if raw := c.Query("end_date"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.EndDate = &date
	}
	filter.Type = c.Query("type")

	orders, count, err := database.ListOrders(config.DB, user.ID, filter)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OrdersPublic{Data: orders, Count: count})
}

// CreateOrder logs a transaction against an existing instrument.
func CreateOrder(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}

	var input models.OrderCreate
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
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid instrument found with instrument id."})
		return
	}

	order, err := database.CreateOrder(config.DB, user.ID, input)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrders removes every order the user owns.
func DeleteOrders(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}

	deleted, err := database.DeleteOrdersByUser(config.DB, user.ID)
	if err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Orders deleted successfully", "count": deleted})
}

// orderFromPath resolves :order_id among the user's own orders.
func orderFromPath(c *gin.Context, user *models.User) *models.Order {
	id, ok := pathID(c, "order_id", "Invalid order id.")
	if !ok {
		return nil
	}

	order, err := database.GetOrderByID(config.DB, id)
	if err != nil {
		databaseError(c, err)
		return nil
	}
	if order == nil || order.UserID != user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No order with this id for user."})
		return nil
	}
	return order
}

func GetOrderByID(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}
	order := orderFromPath(c, user)
	if order == nil {
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder patches any subset of date, volume, price and type. At least
// one field must be supplied.
func UpdateOrder(c *gin.Context) {
	user := userFromPath(c)
	if user == nil {
		return
	}
	order := orderFromPath(c, user)
	if order == nil {
		return
	}

	var input models.OrderUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Date == nil && input.Volume == nil && input.Price == nil && input.Type == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No order fields provided to update order."})
		return
	}

	if err := database.UpdateOrder(config.DB, order, input); err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
