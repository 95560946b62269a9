package database

import (
	"errors"

	"investment-tracker/models"

	"gorm.io/gorm"
)

func CreateOrder(db *gorm.DB, userID uint, in models.OrderCreate) (*models.Order, error) {
	order := models.Order{
		UserID:       userID,
		InstrumentID: in.InstrumentID,
		Date:         in.Date,
		Volume:       in.Volume,
		Price:        in.Price,
		Type:         in.Type,
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderByID returns the matching order, or nil when none exists.
func GetOrderByID(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := db.First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns the user's orders with all supplied filters combined
// with AND. Date bounds are inclusive; count reflects the filtered set.
func ListOrders(db *gorm.DB, userID uint, filter models.OrderFilter) ([]models.Order, int64, error) {
	filtered := func() *gorm.DB {
		query := db.Model(&models.Order{}).Where("user_id = ?", userID)
		if filter.InstrumentID != 0 {
			query = query.Where("instrument_id = ?", filter.InstrumentID)
		}
		if filter.StartDate != nil {
			query = query.Where("date >= ?", filter.StartDate.Time)
		}
		if filter.EndDate != nil {
			query = query.Where("date <= ?", filter.EndDate.Time)
		}
		if filter.Type != "" {
			query = query.Where("type = ?", filter.Type)
		}
		return query
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	if err := filtered().Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

// UpdateOrder patches the supplied fields only and reloads the record.
func UpdateOrder(db *gorm.DB, order *models.Order, in models.OrderUpdate) error {
	updates := make(map[string]interface{})
	if in.Date != nil {
		updates["date"] = in.Date.Time
	}
	if in.Volume != nil {
		updates["volume"] = *in.Volume
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Type != nil {
		updates["type"] = *in.Type
	}

	if err := db.Model(order).Updates(updates).Error; err != nil {
		return err
	}
	return db.First(order, order.ID).Error
}

func DeleteOrder(db *gorm.DB, order *models.Order) error {
	return db.Delete(order).Error
}

// DeleteOrdersByUser removes every order the user owns and reports how many
// rows went.
func DeleteOrdersByUser(db *gorm.DB, userID uint) (int64, error) {
	result := db.Where("user_id = ?", userID).Delete(&models.Order{})
	return result.RowsAffected, result.Error
}
