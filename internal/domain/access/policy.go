// Package access holds the authorization model: who the caller is (Identity) and which
// operations each identity may run. Every use case receives the Identity explicitly.
package access

import (
	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
)

// Identity is the authenticated caller. The set of implementations is closed
// (Admin, Manager) by the unexported marker method.
type Identity interface {
	UserID() string
	isIdentity()
}

// Admin may read and write every district, shop and stock entry.
type Admin struct {
	ID string
}

func (a Admin) UserID() string { return a.ID }
func (Admin) isIdentity()      {}

// Manager may only touch the stock of ShopID, which always comes from the
// authenticated session and never from request input.
type Manager struct {
	ID     string
	ShopID string
}

func (m Manager) UserID() string { return m.ID }
func (Manager) isIdentity()      {}

// Scope tags an operation with the identities allowed to run it.
type Scope int

const (
	// AdminOnly operations require an Admin.
	AdminOnly Scope = iota + 1
	// ManagerOnly operations require a Manager with an assigned shop.
	ManagerOnly
	// SelfService operations act on the caller's own user record.
	SelfService
)

// Operation names a gated action.
type Operation struct {
	Name  string
	Scope Scope
}

var (
	OpAdminDashboard  = Operation{Name: "admin.dashboard", Scope: AdminOnly}
	OpCreateDistrict  = Operation{Name: "admin.create_district", Scope: AdminOnly}
	OpCreateShop      = Operation{Name: "admin.create_shop", Scope: AdminOnly}
	OpAssignManager   = Operation{Name: "admin.assign_manager", Scope: AdminOnly}
	OpListBranches    = Operation{Name: "admin.list_branches", Scope: AdminOnly}
	OpViewBranchStock = Operation{Name: "admin.view_branch_stock", Scope: AdminOnly}
	OpBranchDashboard = Operation{Name: "branch.dashboard", Scope: ManagerOnly}
	OpViewOwnStock    = Operation{Name: "branch.view_stock", Scope: ManagerOnly}
	OpListUnstocked   = Operation{Name: "branch.list_unstocked", Scope: ManagerOnly}
	OpSetQuantity     = Operation{Name: "branch.set_quantity", Scope: ManagerOnly}
	OpAddProduct      = Operation{Name: "branch.add_product", Scope: ManagerOnly}
	OpViewProfile     = Operation{Name: "profile.view", Scope: SelfService}
	OpUpdateProfile   = Operation{Name: "profile.update", Scope: SelfService}
)

// Authorize decides whether id may run op. A nil identity is never authorized.
func Authorize(id Identity, op Operation) bool {
	switch v := id.(type) {
	case Admin:
		if v.ID == "" {
			return false
		}
		return op.Scope == AdminOnly || op.Scope == SelfService
	case Manager:
		if v.ID == "" || v.ShopID == "" {
			return false
		}
		return op.Scope == ManagerOnly || op.Scope == SelfService
	default:
		return false
	}
}

// Require is Authorize returning domain.ErrUnauthorized on denial.
func Require(id Identity, op Operation) error {
	if !Authorize(id, op) {
		return domain.ErrUnauthorized
	}
	return nil
}

// OwnShop authorizes a manager-only operation and returns the shop it applies to.
func OwnShop(id Identity, op Operation) (string, error) {
	if op.Scope != ManagerOnly {
		return "", domain.ErrUnauthorized
	}
	if err := Require(id, op); err != nil {
		return "", err
	}
	return id.(Manager).ShopID, nil
}

// FromUser builds the identity of a stored user.
func FromUser(u *entity.User) (Identity, error) {
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	return FromClaims(u.ID, u.Role, u.ShopID)
}

// FromClaims rebuilds an identity from session claims. Unknown roles and managers without a
// shop yield domain.ErrUnauthorized.
func FromClaims(userID, role, shopID string) (Identity, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	switch role {
	case entity.RoleAdmin:
		return Admin{ID: userID}, nil
	case entity.RoleManager:
		if shopID == "" {
			return nil, domain.ErrUnauthorized
		}
		return Manager{ID: userID, ShopID: shopID}, nil
	default:
		return nil, domain.ErrUnauthorized
	}
}

// RoleOf returns the stored role name of id, or "" for nil.
func RoleOf(id Identity) string {
	switch id.(type) {
	case Admin:
		return entity.RoleAdmin
	case Manager:
		return entity.RoleManager
	default:
		return ""
	}
}
