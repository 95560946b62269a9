package models

// Trade is a closed position: the asset's fields plus the sale details.
type Trade struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	PortfolioID  uint    `gorm:"index" json:"portfolio_id"`
	InstrumentID uint    `gorm:"index" json:"instrument_id"`
	BuyDate      Date    `json:"buy_date"`
	BuyPrice     float64 `json:"buy_price"`
	SellDate     Date    `json:"sell_date"`
	SellPrice    float64 `json:"sell_price"`
	Volume       float64 `json:"volume"`
	Currency     string  `gorm:"size:5" json:"currency"`
}

type TradeCreate struct {
	AssetID   uint    `json:"asset_id" binding:"required"`
	SellDate  Date    `json:"sell_date" binding:"required"`
	SellPrice float64 `json:"sell_price" binding:"required,gt=0"`
}

type TradesPublic struct {
	Data  []Trade `json:"data"`
	Count int64   `json:"count"`
}
