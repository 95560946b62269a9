package models

// Order is a logged buy/sell transaction, independent of asset bookkeeping.
// Type is stored as free text.
type Order struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	UserID       uint    `gorm:"index" json:"user_id"`
	InstrumentID uint    `gorm:"index" json:"instrument_id"`
	Date         Date    `json:"date"`
	Volume       float64 `json:"volume"`
	Price        float64 `json:"price"`
	Type         string  `gorm:"size:255" json:"type"`
}

type OrderCreate struct {
	InstrumentID uint    `json:"instrument_id" binding:"required"`
	Date         Date    `json:"date" binding:"required"`
	Volume       float64 `json:"volume" binding:"required,gt=0"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Type         string  `json:"type" binding:"required"`
}

// OrderUpdate is a sparse patch over any subset of order fields.
type OrderUpdate struct {
	Date   *Date    `json:"date"`
	Volume *float64 `json:"volume"`
	Price  *float64 `json:"price"`
	Type   *string  `json:"type"`
}

// OrderFilter holds list predicates; zero fields are ignored and the rest
// combine with AND. Date bounds are inclusive.
type OrderFilter struct {
	InstrumentID uint
	StartDate    *Date
	EndDate      *Date
	Type         string
}

type OrdersPublic struct {
	Data  []Order `json:"data"`
	Count int64   `json:"count"`
}
