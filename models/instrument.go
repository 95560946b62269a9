package models

// Instrument is a tradable security. OHLC prices are nullable until the first
// price update arrives through the API.
type Instrument struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Name     string   `gorm:"size:255" json:"name"`
	Exchange string   `gorm:"size:255" json:"exchange"`
	Symbol   string   `gorm:"uniqueIndex;size:255" json:"symbol"`
	Currency string   `gorm:"size:5" json:"currency"`
	Open     *float64 `json:"open"`
	High     *float64 `json:"high"`
	Low      *float64 `json:"low"`
	Close    *float64 `json:"close"`
}

type InstrumentCreate struct {
	Name     string `json:"name" binding:"required,max=255"`
	Exchange string `json:"exchange" binding:"required,max=255"`
	Symbol   string `json:"symbol" binding:"required,max=255"`
	Currency string `json:"currency" binding:"required,max=5"`
}

// InstrumentUpdate patches the currency and/or the OHLC prices. Prices, when
// present, must hold exactly open, high, low and close in that order.
type InstrumentUpdate struct {
	Currency *string   `json:"currency"`
	Prices   []float64 `json:"prices"`
}

// InstrumentFilter holds list predicates; empty fields are ignored and the
// rest combine with AND.
type InstrumentFilter struct {
	Name     string
	Exchange string
	Symbol   string
	Currency string
}

type InstrumentsPublic struct {
	Data  []Instrument `json:"data"`
	Count int64        `json:"count"`
}
