package memory

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

var _ repository.DistrictRepository = (*DistrictRepo)(nil)

// DistrictRepo implements repository.DistrictRepository in memory.
type DistrictRepo struct {
	store *Store
}

// NewDistrictRepository builds the district adapter.
func NewDistrictRepository(store *Store) *DistrictRepo {
	return &DistrictRepo{store: store}
}

func (r *DistrictRepo) Create(_ context.Context, d *entity.District) error {
	return r.store.update(nil, func(st *state) error {
		for _, other := range st.districts {
			if other.Name == d.Name {
				return domain.ErrDuplicateDistrict
			}
		}
		st.districts[d.ID] = *d
		return nil
	})
}

func (r *DistrictRepo) GetByID(_ context.Context, id string) (*entity.District, error) {
	var out *entity.District
	err := r.store.view(nil, func(st *state) error {
		if d, ok := st.districts[id]; ok {
			out = &d
		}
		return nil
	})
	return out, err
}

func (r *DistrictRepo) List(_ context.Context) ([]*entity.District, error) {
	var list []*entity.District
	err := r.store.view(nil, func(st *state) error {
		for _, d := range st.districts {
			list = append(list, &d)
		}
		return nil
	})
	return sortedBy(list, func(d *entity.District) string { return d.Name }), err
}

func (r *DistrictRepo) Count(_ context.Context) (int, error) {
	var n int
	err := r.store.view(nil, func(st *state) error {
		n = len(st.districts)
		return nil
	})
	return n, err
}
