package memory

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implements repository.ShopRepository in memory.
type ShopRepo struct {
	store *Store
	tx    *state
}

// NewShopRepository builds the shop adapter.
func NewShopRepository(store *Store) *ShopRepo {
	return &ShopRepo{store: store}
}

func (r *ShopRepo) Create(_ context.Context, s *entity.Shop) error {
	return r.store.update(r.tx, func(st *state) error {
		if _, ok := st.districts[s.DistrictID]; !ok {
			return domain.ErrUnknownDistrict
		}
		created := *s
		created.ManagerID = ""
		st.shops[s.ID] = created
		return nil
	})
}

func (r *ShopRepo) GetByID(_ context.Context, id string) (*entity.Shop, error) {
	var out *entity.Shop
	err := r.store.view(r.tx, func(st *state) error {
		if s, ok := st.shops[id]; ok {
			out = &s
		}
		return nil
	})
	return out, err
}

// GetForUpdate is GetByID: a transaction already holds the store's write lock.
func (r *ShopRepo) GetForUpdate(ctx context.Context, id string) (*entity.Shop, error) {
	return r.GetByID(ctx, id)
}

func (r *ShopRepo) SetManager(_ context.Context, shopID, managerID string) error {
	return r.store.update(r.tx, func(st *state) error {
		shop, ok := st.shops[shopID]
		if !ok {
			return domain.ErrUnknownShop
		}
		if shop.HasManager() {
			return domain.ErrShopAlreadyManaged
		}
		if _, ok := st.users[managerID]; !ok {
			return domain.ErrUserNotFound
		}
		for _, other := range st.shops {
			if other.ManagerID == managerID {
				return domain.ErrShopAlreadyManaged
			}
		}
		shop.ManagerID = managerID
		st.shops[shopID] = shop
		return nil
	})
}

func (r *ShopRepo) GetDetail(_ context.Context, id string) (*entity.ShopDetail, error) {
	var out *entity.ShopDetail
	err := r.store.view(r.tx, func(st *state) error {
		if s, ok := st.shops[id]; ok {
			out = detail(st, s)
		}
		return nil
	})
	return out, err
}

func (r *ShopRepo) ListDetails(_ context.Context) ([]*entity.ShopDetail, error) {
	return r.list(func(entity.Shop) bool { return true }, true)
}

func (r *ShopRepo) ListDetailsByDistrict(_ context.Context, districtID string) ([]*entity.ShopDetail, error) {
	return r.list(func(s entity.Shop) bool { return s.DistrictID == districtID }, false)
}

func (r *ShopRepo) ListWithoutManager(_ context.Context) ([]*entity.ShopDetail, error) {
	return r.list(func(s entity.Shop) bool { return !s.HasManager() }, true)
}

func (r *ShopRepo) Count(_ context.Context) (int, error) {
	var n int
	err := r.store.view(r.tx, func(st *state) error {
		n = len(st.shops)
		return nil
	})
	return n, err
}

// list orders by shop name, then stably by district name when byDistrict is set.
func (r *ShopRepo) list(keep func(entity.Shop) bool, byDistrict bool) ([]*entity.ShopDetail, error) {
	var list []*entity.ShopDetail
	err := r.store.view(r.tx, func(st *state) error {
		for _, s := range st.shops {
			if keep(s) {
				list = append(list, detail(st, s))
			}
		}
		return nil
	})
	list = sortedBy(list, func(d *entity.ShopDetail) string { return d.Name })
	if byDistrict {
		list = sortedBy(list, func(d *entity.ShopDetail) string { return d.DistrictName })
	}
	return list, err
}

func detail(st *state, s entity.Shop) *entity.ShopDetail {
	d := &entity.ShopDetail{Shop: s, DistrictName: st.districts[s.DistrictID].Name}
	if m, ok := st.users[s.ManagerID]; ok && s.HasManager() {
		d.ManagerName = m.Name
		d.ManagerEmail = m.Email
		d.ManagerContact = m.Contact
	}
	return d
}
