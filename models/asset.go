package models

// Asset is an open position in a portfolio. Currency is copied from the
// instrument at creation time and does not track later instrument changes.
type Asset struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	PortfolioID  uint    `gorm:"index" json:"portfolio_id"`
	InstrumentID uint    `gorm:"index" json:"instrument_id"`
	BuyDate      Date    `json:"buy_date"`
	BuyPrice     float64 `json:"buy_price"`
	Volume       float64 `json:"volume"`
	Currency     string  `gorm:"size:5" json:"currency"`
}

type AssetCreate struct {
	InstrumentID uint    `json:"instrument_id" binding:"required"`
	BuyDate      Date    `json:"buy_date" binding:"required"`
	BuyPrice     float64 `json:"buy_price" binding:"required,gt=0"`
	Volume       float64 `json:"volume" binding:"required,gt=0"`
}

// AssetUpdate is a sparse patch; nil fields are left untouched.
type AssetUpdate struct {
	BuyPrice *float64 `json:"buy_price"`
	Volume   *float64 `json:"volume"`
}

type AssetsPublic struct {
	Data  []Asset `json:"data"`
	Count int64   `json:"count"`
}
