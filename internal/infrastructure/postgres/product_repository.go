package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements the catalog port on PostgreSQL (pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the catalog adapter.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create adds a catalog product.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `INSERT INTO products (id, name) VALUES ($1, $2)`, p.ID, p.Name)
	if err != nil {
		return mapProductWriteError(err)
	}
	return nil
}

// List returns the catalog ordered by name.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return scanProducts(r.q.Query(ctx, `SELECT id, name FROM products ORDER BY name`))
}

// GetByID returns nil, nil when the product does not exist.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, `SELECT id, name FROM products WHERE id = $1`, id).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Count returns the catalog size.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, `SELECT COUNT(*) FROM products`)
}

func scanProducts(rows pgx.Rows, err error) ([]*entity.Product, error) {
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func mapProductWriteError(err error) error {
	if constraint, ok := isUniqueViolation(err); ok && constraint == "products_name_key" {
		return domain.ErrDuplicateProduct
	}
	return fmt.Errorf("insert product: %w", err)
}
