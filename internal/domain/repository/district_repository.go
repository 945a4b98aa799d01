package repository

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/domain/entity"
)

// DistrictRepository is the persistence port for District.
type DistrictRepository interface {
	// Create returns domain.ErrDuplicateDistrict when the name is taken.
	Create(ctx context.Context, district *entity.District) error
	GetByID(ctx context.Context, id string) (*entity.District, error)
	List(ctx context.Context) ([]*entity.District, error)
	Count(ctx context.Context) (int, error)
}
