package memory

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements repository.UserRepository in memory.
type UserRepo struct {
	store *Store
	tx    *state
}

// NewUserRepository builds the user adapter.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	return r.store.update(r.tx, func(st *state) error {
		if u.Role != entity.RoleAdmin && u.Role != entity.RoleManager {
			return domain.ErrInvalidRole
		}
		if u.ShopID != "" {
			if u.Role != entity.RoleManager {
				return domain.ErrInvalidRole
			}
			if _, ok := st.shops[u.ShopID]; !ok {
				return domain.ErrUnknownShop
			}
		}
		for _, other := range st.users {
			switch {
			case other.Username == u.Username:
				return domain.ErrDuplicateUsername
			case other.Email == u.Email:
				return domain.ErrDuplicateEmail
			case u.ShopID != "" && other.ShopID == u.ShopID:
				return domain.ErrShopAlreadyManaged
			}
		}
		st.users[u.ID] = *u
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.store.view(r.tx, func(st *state) error {
		if u, ok := st.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	var out *entity.User
	err := r.store.view(r.tx, func(st *state) error {
		for _, u := range st.users {
			if u.Username == username {
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) UpdateProfile(_ context.Context, u *entity.User) error {
	return r.store.update(r.tx, func(st *state) error {
		cur, ok := st.users[u.ID]
		if !ok {
			return domain.ErrUserNotFound
		}
		for id, other := range st.users {
			if id != u.ID && other.Email == u.Email {
				return domain.ErrDuplicateEmail
			}
		}
		cur.Name = u.Name
		cur.Email = u.Email
		cur.Contact = u.Contact
		cur.UpdatedAt = u.UpdatedAt
		st.users[u.ID] = cur
		return nil
	})
}

func (r *UserRepo) CountByRole(_ context.Context, role string) (int, error) {
	var n int
	err := r.store.view(r.tx, func(st *state) error {
		for _, u := range st.users {
			if u.Role == role {
				n++
			}
		}
		return nil
	})
	return n, err
}
