package memory

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implements the inventory ledger in memory. The (shop, product) check and the
// write happen under one lock.
type StockRepo struct {
	store *Store
}

// NewStockRepository builds the ledger adapter.
func NewStockRepository(store *Store) *StockRepo {
	return &StockRepo{store: store}
}

func (r *StockRepo) ListByShop(_ context.Context, shopID string) ([]*entity.StockEntry, error) {
	var list []*entity.StockEntry
	err := r.store.view(nil, func(st *state) error {
		for key, e := range st.stock {
			if key.shopID == shopID {
				e.ProductName = st.products[key.productID].Name
				list = append(list, &e)
			}
		}
		return nil
	})
	return sortedBy(list, func(e *entity.StockEntry) string { return e.ProductName }), err
}

func (r *StockRepo) ListUnstocked(_ context.Context, shopID string) ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.store.view(nil, func(st *state) error {
		list = productList(st, func(id string) bool {
			_, ok := st.stock[stockKey{shopID, id}]
			return ok
		})
		return nil
	})
	return list, err
}

func (r *StockRepo) Upsert(_ context.Context, entry *entity.StockEntry) (*entity.StockEntry, error) {
	return r.write(entry, true)
}

func (r *StockRepo) Insert(_ context.Context, entry *entity.StockEntry) (*entity.StockEntry, error) {
	return r.write(entry, false)
}

func (r *StockRepo) write(entry *entity.StockEntry, overwrite bool) (*entity.StockEntry, error) {
	var out entity.StockEntry
	err := r.store.update(nil, func(st *state) error {
		if entry.Quantity.IsNegative() {
			return domain.ErrInvalidQuantity
		}
		if _, ok := st.shops[entry.ShopID]; !ok {
			return domain.ErrUnknownShop
		}
		product, ok := st.products[entry.ProductID]
		if !ok {
			return domain.ErrUnknownProduct
		}
		key := stockKey{entry.ShopID, entry.ProductID}
		if _, exists := st.stock[key]; exists && !overwrite {
			return domain.ErrAlreadyStocked
		}
		out = entity.StockEntry{
			ShopID:      entry.ShopID,
			ProductID:   entry.ProductID,
			Quantity:    entry.Quantity,
			LastUpdated: r.store.tick(),
		}
		st.stock[key] = out
		out.ProductName = product.Name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
