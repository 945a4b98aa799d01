package usecase

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

// ProductUseCase exposes the read-only catalog.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List returns every product ordered by name.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponses(list), nil
}
