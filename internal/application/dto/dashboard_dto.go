package dto

// AdminDashboardResponse counts shown on the administrator landing page.
type AdminDashboardResponse struct {
	DistrictCount int                `json:"district_count"`
	ShopCount     int                `json:"shop_count"`
	ProductCount  int                `json:"product_count"`
	ManagerCount  int                `json:"manager_count"`
	Districts     []DistrictResponse `json:"districts"`
}
