package dto

import "github.com/jhoicas/rationshop-api/internal/domain/entity"

// NewUserResponse maps a user without its password hash.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Contact:   u.Contact,
		Role:      u.Role,
		ShopID:    u.ShopID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewDistrictResponse(d *entity.District) DistrictResponse {
	return DistrictResponse{ID: d.ID, Name: d.Name, CreatedAt: d.CreatedAt}
}

func NewDistrictResponses(list []*entity.District) []DistrictResponse {
	out := make([]DistrictResponse, 0, len(list))
	for _, d := range list {
		out = append(out, NewDistrictResponse(d))
	}
	return out
}

func NewShopResponse(s *entity.Shop) ShopResponse {
	return ShopResponse{
		ID:         s.ID,
		Name:       s.Name,
		DistrictID: s.DistrictID,
		Address:    s.Address,
		ManagerID:  s.ManagerID,
		CreatedAt:  s.CreatedAt,
	}
}

func NewShopDetailResponse(d *entity.ShopDetail) ShopResponse {
	out := NewShopResponse(&d.Shop)
	out.DistrictName = d.DistrictName
	out.ManagerName = d.ManagerName
	out.ManagerEmail = d.ManagerEmail
	out.ManagerContact = d.ManagerContact
	return out
}

func NewShopDetailResponses(list []*entity.ShopDetail) []ShopResponse {
	out := make([]ShopResponse, 0, len(list))
	for _, d := range list {
		out = append(out, NewShopDetailResponse(d))
	}
	return out
}

func NewProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ProductResponse{ID: p.ID, Name: p.Name})
	}
	return out
}

func NewStockEntryResponse(e *entity.StockEntry) StockEntryResponse {
	return StockEntryResponse{
		ProductID:   e.ProductID,
		ProductName: e.ProductName,
		Quantity:    e.Quantity,
		LastUpdated: e.LastUpdated,
	}
}

func NewStockEntryResponses(list []*entity.StockEntry) []StockEntryResponse {
	out := make([]StockEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, NewStockEntryResponse(e))
	}
	return out
}
