package repository

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/domain/entity"
)

// StockRepository is the port of the inventory ledger. (shop, product) is unique and the
// storage layer enforces it.
type StockRepository interface {
	ListByShop(ctx context.Context, shopID string) ([]*entity.StockEntry, error)
	ListUnstocked(ctx context.Context, shopID string) ([]*entity.Product, error)
	// Upsert inserts or overwrites the entry and refreshes LastUpdated.
	// Returns domain.ErrUnknownProduct / domain.ErrUnknownShop on dangling references.
	Upsert(ctx context.Context, entry *entity.StockEntry) (*entity.StockEntry, error)
	// Insert fails with domain.ErrAlreadyStocked when the pair already exists.
	Insert(ctx context.Context, entry *entity.StockEntry) (*entity.StockEntry, error)
}
