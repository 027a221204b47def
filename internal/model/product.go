package model

import (
	"github.com/shopspring/decimal"
)

// Product categories.
const (
	CategorySmartphones = "smartphones"
	CategoryAccessories = "accessories"
	CategoryParts       = "parts"
	CategoryTablets     = "tablets"
)

// Stock status badge values, derived at read time from Quantity vs LowStockThreshold.
const (
	StockCritical = "critical"
	StockLow      = "low"
	StockHealthy  = "healthy"
)

// Product is an inventory item.
type Product struct {
	ID                string `gorm:"primaryKey"`
	Name              string `gorm:"index;not null"`
	Description       string
	Category          string          `gorm:"type:varchar(20);not null"`
	PurchasePrice     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SellingPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity          int             `gorm:"not null;default:0"`
	LowStockThreshold int             `gorm:"not null;default:5"`
	ImageURL          string
	SKU               string `gorm:"index;not null"`
	RegisteredAt      string `gorm:"type:varchar(10)"` // YYYY-MM-DD
}

// StockStatus returns the tri-state badge for the current stock level.
// It is computed here, never stored.
func (p *Product) StockStatus() string {
	switch {
	case p.Quantity <= p.LowStockThreshold/2:
		return StockCritical
	case p.Quantity <= p.LowStockThreshold:
		return StockLow
	default:
		return StockHealthy
	}
}
