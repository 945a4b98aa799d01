package memory

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements the catalog port in memory.
type ProductRepo struct {
	store *Store
}

// NewProductRepository builds the catalog adapter.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.store.update(nil, func(st *state) error {
		for _, other := range st.products {
			if other.Name == p.Name {
				return domain.ErrDuplicateProduct
			}
		}
		st.products[p.ID] = *p
		return nil
	})
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.store.view(nil, func(st *state) error {
		list = productList(st, nil)
		return nil
	})
	return list, err
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.store.view(nil, func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) Count(_ context.Context) (int, error) {
	var n int
	err := r.store.view(nil, func(st *state) error {
		n = len(st.products)
		return nil
	})
	return n, err
}

// productList returns the catalog ordered by name, skipping products for which skip is true.
func productList(st *state, skip func(id string) bool) []*entity.Product {
	var list []*entity.Product
	for id, p := range st.products {
		if skip != nil && skip(id) {
			continue
		}
		list = append(list, &p)
	}
	return sortedBy(list, func(p *entity.Product) string { return p.Name })
}
