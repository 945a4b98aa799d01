package repository

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/domain/entity"
)

// UserRepository is the persistence port for User.
type UserRepository interface {
	// Create returns domain.ErrDuplicateUsername or domain.ErrDuplicateEmail on conflicts.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// UpdateProfile only writes name, email and contact.
	UpdateProfile(ctx context.Context, user *entity.User) error
	CountByRole(ctx context.Context, role string) (int, error)
}
