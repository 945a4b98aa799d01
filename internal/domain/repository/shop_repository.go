package repository

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/domain/entity"
)

// ShopRepository is the persistence port for Shop.
type ShopRepository interface {
	// Create returns domain.ErrUnknownDistrict when the district does not exist.
	Create(ctx context.Context, shop *entity.Shop) error
	GetByID(ctx context.Context, id string) (*entity.Shop, error)
	// GetForUpdate locks the shop row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id string) (*entity.Shop, error)
	// SetManager sets manager_id only while it is still NULL; otherwise domain.ErrShopAlreadyManaged.
	SetManager(ctx context.Context, shopID, managerID string) error
	GetDetail(ctx context.Context, id string) (*entity.ShopDetail, error)
	ListDetails(ctx context.Context) ([]*entity.ShopDetail, error)
	ListDetailsByDistrict(ctx context.Context, districtID string) ([]*entity.ShopDetail, error)
	ListWithoutManager(ctx context.Context) ([]*entity.ShopDetail, error)
	Count(ctx context.Context) (int, error)
}
