package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse is a catalog entry.
type ProductResponse struct {
	ID   string `json:"product_id"`
	Name string `json:"product_name"`
}

// StockEntryResponse is one ledger row.
type StockEntryResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	LastUpdated time.Time       `json:"last_updated"`
}

// SetQuantityRequest body for POST /api/branch/stock. Any shop id in the body is ignored.
type SetQuantityRequest struct {
	ProductID string   `json:"product_id" form:"product_id"`
	Quantity  Quantity `json:"quantity" form:"quantity"`
}

// AddProductRequest body for POST /api/branch/products. Quantity defaults to 0.
type AddProductRequest struct {
	ProductID string   `json:"product_id" form:"product_id"`
	Quantity  Quantity `json:"quantity" form:"quantity"`
}

// ShopStockResponse is a shop with its ledger.
type ShopStockResponse struct {
	Shop  ShopResponse         `json:"shop"`
	Stock []StockEntryResponse `json:"stock"`
}

// BranchDashboardResponse is the manager's landing data.
type BranchDashboardResponse struct {
	Shop              ShopResponse         `json:"shop"`
	Stock             []StockEntryResponse `json:"stock"`
	AvailableProducts []ProductResponse    `json:"available_products"`
}
