// Package organization manages the district -> shop -> manager hierarchy.
package organization

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/application/usecase"
	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/access"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

// UseCase groups district, shop and manager-assignment operations.
type UseCase struct {
	districts repository.DistrictRepository
	shops     repository.ShopRepository
	txRunner  TxRunner
}

// NewUseCase builds the organization use case.
func NewUseCase(districts repository.DistrictRepository, shops repository.ShopRepository, txRunner TxRunner) *UseCase {
	return &UseCase{districts: districts, shops: shops, txRunner: txRunner}
}

// CreateDistrict adds a district. A taken name yields domain.ErrDuplicateDistrict.
func (uc *UseCase) CreateDistrict(ctx context.Context, id access.Identity, in dto.CreateDistrictRequest) (*dto.DistrictResponse, error) {
	if err := access.Require(id, access.OpCreateDistrict); err != nil {
		return nil, err
	}
	name := entity.NormalizeName(in.Name)
	if name == "" {
		return nil, domain.ErrMissingField
	}
	district := &entity.District{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.districts.Create(ctx, district); err != nil {
		return nil, err
	}
	out := dto.NewDistrictResponse(district)
	return &out, nil
}

// ListDistricts is public: every district ordered by name.
func (uc *UseCase) ListDistricts(ctx context.Context) ([]dto.DistrictResponse, error) {
	list, err := uc.districts.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewDistrictResponses(list), nil
}

// CreateShop adds a shop without manager to an existing district.
func (uc *UseCase) CreateShop(ctx context.Context, id access.Identity, in dto.CreateShopRequest) (*dto.ShopResponse, error) {
	if err := access.Require(id, access.OpCreateShop); err != nil {
		return nil, err
	}
	name := entity.NormalizeName(in.Name)
	districtID := strings.TrimSpace(in.DistrictID)
	if name == "" || districtID == "" {
		return nil, domain.ErrMissingField
	}
	if !usecase.ValidID(districtID) {
		return nil, domain.ErrUnknownDistrict
	}
	district, err := uc.districts.GetByID(ctx, districtID)
	if err != nil {
		return nil, err
	}
	if district == nil {
		return nil, domain.ErrUnknownDistrict
	}
	shop := &entity.Shop{
		ID:         uuid.New().String(),
		Name:       name,
		DistrictID: district.ID,
		Address:    strings.TrimSpace(in.Address),
		CreatedAt:  time.Now(),
	}
	// The foreign key still guards the insert, so the lookup above is only for the message.
	if err := uc.shops.Create(ctx, shop); err != nil {
		return nil, err
	}
	out := dto.NewShopResponse(shop)
	out.DistrictName = district.Name
	return &out, nil
}

// ListShopsByDistrict is public: the shops of a district with their manager contact.
func (uc *UseCase) ListShopsByDistrict(ctx context.Context, districtID string) (*dto.DistrictShopsResponse, error) {
	if !usecase.ValidID(districtID) {
		return nil, domain.ErrUnknownDistrict
	}
	district, err := uc.districts.GetByID(ctx, districtID)
	if err != nil {
		return nil, err
	}
	if district == nil {
		return nil, domain.ErrUnknownDistrict
	}
	shops, err := uc.shops.ListDetailsByDistrict(ctx, district.ID)
	if err != nil {
		return nil, err
	}
	return &dto.DistrictShopsResponse{
		District: dto.NewDistrictResponse(district),
		Shops:    dto.NewShopDetailResponses(shops),
	}, nil
}

// GetShop is public: one shop with district and manager contact.
func (uc *UseCase) GetShop(ctx context.Context, shopID string) (*dto.ShopResponse, error) {
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
	out := dto.NewShopDetailResponse(detail)
	return &out, nil
}

// ListBranches returns every shop ordered by district and name (admin overview).
func (uc *UseCase) ListBranches(ctx context.Context, id access.Identity) ([]dto.ShopResponse, error) {
	if err := access.Require(id, access.OpListBranches); err != nil {
		return nil, err
	}
	list, err := uc.shops.ListDetails(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewShopDetailResponses(list), nil
}

// ShopsWithoutManager lists the only shops that AssignManager accepts as target.
func (uc *UseCase) ShopsWithoutManager(ctx context.Context, id access.Identity) ([]dto.ShopResponse, error) {
	if err := access.Require(id, access.OpAssignManager); err != nil {
		return nil, err
	}
	list, err := uc.shops.ListWithoutManager(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewShopDetailResponses(list), nil
}

// AssignManager hires a manager for a shop: it creates the manager (assigned to the shop)
// and sets shop.manager in one transaction. On any failure nothing is persisted.
func (uc *UseCase) AssignManager(ctx context.Context, id access.Identity, in dto.AssignManagerRequest) (*dto.AssignManagerResponse, error) {
	if err := access.Require(id, access.OpAssignManager); err != nil {
		return nil, err
	}
	shopID := strings.TrimSpace(in.ShopID)
	if shopID == "" {
		return nil, domain.ErrMissingField
	}
	if !usecase.ValidID(shopID) {
		return nil, domain.ErrUnknownShop
	}
	// Validation and hashing happen before the transaction so the shop row is not locked
	// during bcrypt.
	manager, err := usecase.NewUser(dto.CreateUserRequest{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Role:     entity.RoleManager,
		Name:     in.Name,
		Contact:  in.Contact,
		ShopID:   shopID,
	})
	if err != nil {
		return nil, err
	}

	var shop *entity.Shop
	err = uc.txRunner.Run(ctx, func(users repository.UserRepository, shops repository.ShopRepository) error {
		s, err := shops.GetForUpdate(ctx, shopID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrUnknownShop
		}
		if s.HasManager() {
			return domain.ErrShopAlreadyManaged
		}
		if err := users.Create(ctx, manager); err != nil {
			return err
		}
		if err := shops.SetManager(ctx, s.ID, manager.ID); err != nil {
			return err
		}
		s.ManagerID = manager.ID
		shop = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	shopOut := dto.NewShopResponse(shop)
	shopOut.ManagerName = manager.Name
	shopOut.ManagerEmail = manager.Email
	shopOut.ManagerContact = manager.Contact
	return &dto.AssignManagerResponse{
		User: dto.NewUserResponse(manager),
		Shop: shopOut,
	}, nil
}
