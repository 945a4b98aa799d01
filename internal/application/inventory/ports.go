package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/rationshop-api/internal/domain/entity"
)

// StockSheet is the printable snapshot of one shop's ledger.
type StockSheet struct {
	Shop        *entity.ShopDetail
	Entries     []*entity.StockEntry
	GeneratedAt time.Time
}

// StockSheetGenerator renders a StockSheet (PDF in production).
type StockSheetGenerator interface {
	GenerateStockSheet(ctx context.Context, sheet StockSheet) ([]byte, error)
}
