package models

// Summary holds per-user aggregate figures, stored verbatim from updates.
// All three values are null until the first update.
type Summary struct {
	ID                   uint     `gorm:"primaryKey" json:"id"`
	UserID               uint     `gorm:"uniqueIndex" json:"user_id"`
	EndingMarketValue    *float64 `json:"ending_market_value"`
	BeginningMarketValue *float64 `json:"beginning_market_value"`
	ProfitLoss           *float64 `json:"profit_loss"`
}

// SummaryUpdate is a sparse patch; nil fields are left untouched.
type SummaryUpdate struct {
	EndingMarketValue    *float64 `json:"ending_market_value"`
	BeginningMarketValue *float64 `json:"beginning_market_value"`
	ProfitLoss           *float64 `json:"profit_loss"`
}
