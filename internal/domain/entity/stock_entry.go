package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry is the quantity of one product held at one shop. Unique per (ShopID, ProductID).
type StockEntry struct {
	ShopID      string
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	LastUpdated time.Time
}
