package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/application/usecase"
	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/access"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

// UseCase gates the Ledger with the access policy. Manager operations never take a shop id:
// the shop always comes from the identity.
type UseCase struct {
	ledger *Ledger
	shops  repository.ShopRepository
	sheets StockSheetGenerator
}

// NewUseCase builds the inventory use case. sheets may be nil when PDF export is disabled.
func NewUseCase(ledger *Ledger, shops repository.ShopRepository, sheets StockSheetGenerator) *UseCase {
	return &UseCase{ledger: ledger, shops: shops, sheets: sheets}
}

// GetShopStock returns a shop and its ledger. Admins may read any shop; a manager only
// their own, and a foreign or unknown shop id gives the same domain.ErrUnauthorized.
func (uc *UseCase) GetShopStock(ctx context.Context, id access.Identity, shopID string) (*dto.ShopStockResponse, error) {
	detail, err := uc.readableShop(ctx, id, shopID)
	if err != nil {
		return nil, err
	}
	return uc.shopStock(ctx, detail)
}

// BranchStock returns the caller's own shop and ledger.
func (uc *UseCase) BranchStock(ctx context.Context, id access.Identity) (*dto.ShopStockResponse, error) {
	detail, err := uc.ownShop(ctx, id, access.OpViewOwnStock)
	if err != nil {
		return nil, err
	}
	return uc.shopStock(ctx, detail)
}

// BranchDashboard returns the manager's shop, its ledger and the products it does not stock yet.
func (uc *UseCase) BranchDashboard(ctx context.Context, id access.Identity) (*dto.BranchDashboardResponse, error) {
	detail, err := uc.ownShop(ctx, id, access.OpBranchDashboard)
	if err != nil {
		return nil, err
	}
	stock, err := uc.ledger.GetStock(ctx, detail.ID)
	if err != nil {
		return nil, err
	}
	unstocked, err := uc.ledger.ListUnstocked(ctx, detail.ID)
	if err != nil {
		return nil, err
	}
	return &dto.BranchDashboardResponse{
		Shop:              dto.NewShopDetailResponse(detail),
		Stock:             dto.NewStockEntryResponses(stock),
		AvailableProducts: dto.NewProductResponses(unstocked),
	}, nil
}

// ListUnstocked lists the catalog products missing from the caller's shop.
func (uc *UseCase) ListUnstocked(ctx context.Context, id access.Identity) ([]dto.ProductResponse, error) {
	shopID, err := access.OwnShop(id, access.OpListUnstocked)
	if err != nil {
		return nil, err
	}
	list, err := uc.ledger.ListUnstocked(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponses(list), nil
}

// SetQuantity upserts a quantity in the caller's shop.
func (uc *UseCase) SetQuantity(ctx context.Context, id access.Identity, in dto.SetQuantityRequest) (*dto.StockEntryResponse, error) {
	shopID, err := access.OwnShop(id, access.OpSetQuantity)
	if err != nil {
		return nil, err
	}
	entry, err := uc.ledger.SetQuantity(ctx, shopID, strings.TrimSpace(in.ProductID), string(in.Quantity))
	if err != nil {
		return nil, err
	}
	out := dto.NewStockEntryResponse(entry)
	return &out, nil
}

// AddProduct stocks a new product in the caller's shop (strict insert).
func (uc *UseCase) AddProduct(ctx context.Context, id access.Identity, in dto.AddProductRequest) (*dto.StockEntryResponse, error) {
	shopID, err := access.OwnShop(id, access.OpAddProduct)
	if err != nil {
		return nil, err
	}
	entry, err := uc.ledger.AddProduct(ctx, shopID, strings.TrimSpace(in.ProductID), string(in.Quantity))
	if err != nil {
		return nil, err
	}
	out := dto.NewStockEntryResponse(entry)
	return &out, nil
}

// StockSheet renders the ledger of a shop readable by id (same rules as GetShopStock).
func (uc *UseCase) StockSheet(ctx context.Context, id access.Identity, shopID string) ([]byte, error) {
	detail, err := uc.readableShop(ctx, id, shopID)
	if err != nil {
		return nil, err
	}
	return uc.renderSheet(ctx, detail)
}

// BranchStockSheet renders the caller's own ledger.
func (uc *UseCase) BranchStockSheet(ctx context.Context, id access.Identity) ([]byte, error) {
	detail, err := uc.ownShop(ctx, id, access.OpViewOwnStock)
	if err != nil {
		return nil, err
	}
	return uc.renderSheet(ctx, detail)
}

func (uc *UseCase) renderSheet(ctx context.Context, detail *entity.ShopDetail) ([]byte, error) {
	if uc.sheets == nil {
		return nil, domain.ErrExportDisabled
	}
	entries, err := uc.ledger.GetStock(ctx, detail.ID)
	if err != nil {
		return nil, err
	}
	return uc.sheets.GenerateStockSheet(ctx, StockSheet{
		Shop:        detail,
		Entries:     entries,
		GeneratedAt: time.Now(),
	})
}

func (uc *UseCase) shopStock(ctx context.Context, detail *entity.ShopDetail) (*dto.ShopStockResponse, error) {
	stock, err := uc.ledger.GetStock(ctx, detail.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ShopStockResponse{
		Shop:  dto.NewShopDetailResponse(detail),
		Stock: dto.NewStockEntryResponses(stock),
	}, nil
}

// readableShop resolves shopID for a stock read.
func (uc *UseCase) readableShop(ctx context.Context, id access.Identity, shopID string) (*entity.ShopDetail, error) {
	switch id.(type) {
	case access.Admin:
		if err := access.Require(id, access.OpViewBranchStock); err != nil {
			return nil, err
		}
		if !usecase.ValidID(shopID) {
			return nil, domain.ErrUnknownShop
		}
		detail, err := uc.shops.GetDetail(ctx, shopID)
		if err != nil {
			return nil, err
		}
		if detail == nil {
			return nil, domain.ErrUnknownShop
		}
		return detail, nil
	case access.Manager:
		own, err := access.OwnShop(id, access.OpViewOwnStock)
		if err != nil {
			return nil, err
		}
		if shopID != own {
			return nil, domain.ErrUnauthorized
		}
		return uc.ownShop(ctx, id, access.OpViewOwnStock)
	default:
		return nil, domain.ErrUnauthorized
	}
}

// ownShop loads the shop the manager identity is assigned to.
func (uc *UseCase) ownShop(ctx context.Context, id access.Identity, op access.Operation) (*entity.ShopDetail, error) {
	shopID, err := access.OwnShop(id, op)
	if err != nil {
		return nil, err
	}
	detail, err := uc.shops.GetDetail(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if detail == nil || detail.ManagerID != id.UserID() {
		return nil, domain.ErrUnauthorized
	}
	return detail, nil
}
