package models

// DefaultPortfolioType labels a user's single portfolio.
const DefaultPortfolioType = "Overview"

// Portfolio is the per-user container of assets and closed trades. Each user
// owns at most one.
type Portfolio struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"uniqueIndex" json:"user_id"`
	Type   string `gorm:"size:255" json:"type"`
}
