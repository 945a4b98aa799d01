package dto

import "time"

// CreateDistrictRequest body for POST /api/admin/districts.
type CreateDistrictRequest struct {
	Name string `json:"district_name" form:"district_name"`
}

// DistrictResponse output of a district.
type DistrictResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateShopRequest body for POST /api/admin/shops.
type CreateShopRequest struct {
	Name       string `json:"shop_name" form:"shop_name"`
	DistrictID string `json:"district_id" form:"district_id"`
	Address    string `json:"address" form:"address"`
}

// ShopResponse is a shop with its district and, when assigned, its manager's contact data.
type ShopResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DistrictID     string    `json:"district_id"`
	DistrictName   string    `json:"district_name,omitempty"`
	Address        string    `json:"address"`
	ManagerID      string    `json:"manager_id,omitempty"`
	ManagerName    string    `json:"manager_name,omitempty"`
	ManagerEmail   string    `json:"manager_email,omitempty"`
	ManagerContact string    `json:"manager_contact,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// DistrictShopsResponse lists the shops of one district.
type DistrictShopsResponse struct {
	District DistrictResponse `json:"district"`
	Shops    []ShopResponse   `json:"shops"`
}

// AssignManagerRequest body for POST /api/admin/managers (hire a manager for a shop).
type AssignManagerRequest struct {
	ShopID   string `json:"shop_id" form:"shop_id"`
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
	Contact  string `json:"contact" form:"contact"`
}

// AssignManagerResponse is the committed result of a manager assignment.
type AssignManagerResponse struct {
	User UserResponse `json:"user"`
	Shop ShopResponse `json:"shop"`
}
