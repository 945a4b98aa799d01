package inventory

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/application/usecase"
	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	inv "github.com/jhoicas/rationshop-api/internal/domain/inventory"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

// Ledger holds per-shop stock quantities. It takes the shop explicitly; callers
// (UseCase) are responsible for authorizing and resolving which shop that is.
type Ledger struct {
	stock    repository.StockRepository
	products repository.ProductRepository
}

// NewLedger builds the ledger on its persistence ports.
func NewLedger(stock repository.StockRepository, products repository.ProductRepository) *Ledger {
	return &Ledger{stock: stock, products: products}
}

// GetStock returns the entries of a shop ordered by product name.
func (l *Ledger) GetStock(ctx context.Context, shopID string) ([]*entity.StockEntry, error) {
	return l.stock.ListByShop(ctx, shopID)
}

// ListUnstocked returns the catalog products the shop holds no entry for, as of now.
func (l *Ledger) ListUnstocked(ctx context.Context, shopID string) ([]*entity.Product, error) {
	return l.stock.ListUnstocked(ctx, shopID)
}

// SetQuantity overwrites (or creates) the entry for (shopID, productID). Last write wins.
func (l *Ledger) SetQuantity(ctx context.Context, shopID, productID, rawQuantity string) (*entity.StockEntry, error) {
	if productID == "" || rawQuantity == "" {
		return nil, domain.ErrMissingField
	}
	qty, err := inv.ParseQuantity(rawQuantity)
	if err != nil {
		return nil, err
	}
	if err := l.checkProduct(ctx, productID); err != nil {
		return nil, err
	}
	return l.stock.Upsert(ctx, &entity.StockEntry{ShopID: shopID, ProductID: productID, Quantity: qty})
}

// AddProduct stocks a product in the shop for the first time. An empty quantity means 0.
// An existing entry yields domain.ErrAlreadyStocked; the check is the storage constraint.
func (l *Ledger) AddProduct(ctx context.Context, shopID, productID, rawQuantity string) (*entity.StockEntry, error) {
	if productID == "" {
		return nil, domain.ErrMissingField
	}
	if rawQuantity == "" {
		rawQuantity = "0"
	}
	qty, err := inv.ParseQuantity(rawQuantity)
	if err != nil {
		return nil, err
	}
	if err := l.checkProduct(ctx, productID); err != nil {
		return nil, err
	}
	return l.stock.Insert(ctx, &entity.StockEntry{ShopID: shopID, ProductID: productID, Quantity: qty})
}

// checkProduct rejects malformed or unknown product ids before touching the ledger.
func (l *Ledger) checkProduct(ctx context.Context, productID string) error {
	if !usecase.ValidID(productID) {
		return domain.ErrUnknownProduct
	}
	p, err := l.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrUnknownProduct
	}
	return nil
}
