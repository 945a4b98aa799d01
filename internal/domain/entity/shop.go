package entity

import "time"

// Shop is a distribution outlet. ManagerID and the manager's User.ShopID always agree.
type Shop struct {
	ID         string
	Name       string
	DistrictID string
	ManagerID  string // empty while the shop has no manager
	Address    string
	CreatedAt  time.Time
}

// HasManager reports whether a manager has already been assigned.
func (s *Shop) HasManager() bool { return s.ManagerID != "" }

// ShopDetail is a shop joined with its district and manager contact data (read model).
type ShopDetail struct {
	Shop
	DistrictName   string
	ManagerName    string
	ManagerEmail   string
	ManagerContact string
}
