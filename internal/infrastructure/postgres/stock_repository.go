package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implements the inventory ledger on PostgreSQL (pool or tx).
// (shop_id, product_id) is the primary key of stock, so duplicates are rejected by the
// database itself and never by a check-then-insert in Go.
type StockRepo struct {
	q Querier
}

// NewStockRepository builds the ledger adapter.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// ListByShop returns the entries of a shop with product names, ordered by product name.
func (r *StockRepo) ListByShop(ctx context.Context, shopID string) ([]*entity.StockEntry, error) {
	query := `
		SELECT st.shop_id, st.product_id, p.name, st.quantity, st.last_updated
		FROM stock st
		JOIN products p ON p.id = st.product_id
		WHERE st.shop_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ShopID, &e.ProductID, &e.ProductName, &e.Quantity, &e.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ListUnstocked returns catalog products without an entry for the shop, ordered by name.
func (r *StockRepo) ListUnstocked(ctx context.Context, shopID string) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name
		FROM products p
		WHERE NOT EXISTS (
			SELECT 1 FROM stock st WHERE st.shop_id = $1 AND st.product_id = p.id
		)
		ORDER BY p.name`
	return scanProducts(r.q.Query(ctx, query, shopID))
}

// Upsert inserts or overwrites the quantity (last write wins) and refreshes last_updated.
func (r *StockRepo) Upsert(ctx context.Context, entry *entity.StockEntry) (*entity.StockEntry, error) {
	query := `
		WITH st AS (
			INSERT INTO stock (shop_id, product_id, quantity, last_updated)
			VALUES ($1, $2, $3, clock_timestamp())
			ON CONFLICT (shop_id, product_id)
			DO UPDATE SET quantity = EXCLUDED.quantity, last_updated = clock_timestamp()
			RETURNING shop_id, product_id, quantity, last_updated
		)
		SELECT st.shop_id, st.product_id, p.name, st.quantity, st.last_updated
		FROM st JOIN products p ON p.id = st.product_id`
	out, err := r.write(ctx, query, entry)
	if err != nil {
		return nil, fmt.Errorf("upsert stock: %w", err)
	}
	return out, nil
}

// Insert adds a first entry for the pair; an existing entry yields domain.ErrAlreadyStocked.
func (r *StockRepo) Insert(ctx context.Context, entry *entity.StockEntry) (*entity.StockEntry, error) {
	query := `
		WITH st AS (
			INSERT INTO stock (shop_id, product_id, quantity, last_updated)
			VALUES ($1, $2, $3, clock_timestamp())
			RETURNING shop_id, product_id, quantity, last_updated
		)
		SELECT st.shop_id, st.product_id, p.name, st.quantity, st.last_updated
		FROM st JOIN products p ON p.id = st.product_id`
	out, err := r.write(ctx, query, entry)
	if err != nil {
		return nil, fmt.Errorf("insert stock: %w", err)
	}
	return out, nil
}

func (r *StockRepo) write(ctx context.Context, query string, entry *entity.StockEntry) (*entity.StockEntry, error) {
	var e entity.StockEntry
	err := r.q.QueryRow(ctx, query, entry.ShopID, entry.ProductID, entry.Quantity).Scan(
		&e.ShopID, &e.ProductID, &e.ProductName, &e.Quantity, &e.LastUpdated,
	)
	if err != nil {
		return nil, mapStockWriteError(err)
	}
	return &e, nil
}

// mapStockWriteError translates ledger constraint violations into domain errors.
func mapStockWriteError(err error) error {
	if constraint, ok := isUniqueViolation(err); ok && constraint == "stock_pkey" {
		return domain.ErrAlreadyStocked
	}
	if constraint, ok := isForeignKeyViolation(err); ok {
		switch constraint {
		case "stock_product_id_fkey":
			return domain.ErrUnknownProduct
		case "stock_shop_id_fkey":
			return domain.ErrUnknownShop
		}
	}
	if pgErr, ok := pgError(err); ok && pgErr.ConstraintName == "stock_quantity_check" {
		return domain.ErrInvalidQuantity
	}
	if isNumericOutOfRange(err) {
		return domain.ErrInvalidQuantity
	}
	return err
}
