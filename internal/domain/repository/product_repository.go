package repository

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/domain/entity"
)

// ProductRepository is the port of the catalog. Products are only written by seeding.
type ProductRepository interface {
	// Create returns domain.ErrDuplicateProduct when the name is taken.
	Create(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Count(ctx context.Context) (int, error)
}
