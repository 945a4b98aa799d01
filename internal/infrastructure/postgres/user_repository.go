package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, password_hash, role, COALESCE(shop_id::text, ''), name, contact, created_at, updated_at`

// UserRepo implements repository.UserRepository on PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the user adapter. Pass a pool or a tx.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persists a new user.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, role, shop_id, name, contact, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Role, nullable(user.ShopID),
		user.Name, user.Contact, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return mapUserWriteError(err, "insert user")
	}
	return nil
}

// GetByID returns nil, nil when the user does not exist.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername returns nil, nil when the user does not exist.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// UpdateProfile writes the self-service fields only; role, username and password stay untouched.
func (r *UserRepo) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `UPDATE users SET name = $2, email = $3, contact = $4, updated_at = $5 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, user.ID, user.Name, user.Email, user.Contact, user.UpdatedAt)
	if err != nil {
		return mapUserWriteError(err, "update user profile")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// CountByRole returns the number of users with the given role.
func (r *UserRepo) CountByRole(ctx context.Context, role string) (int, error) {
	return count(ctx, r.q, `SELECT COUNT(*) FROM users WHERE role = $1`, role)
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg string) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.ShopID,
		&u.Name, &u.Contact, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// mapUserWriteError translates constraint violations on users into domain errors.
func mapUserWriteError(err error, op string) error {
	if constraint, ok := isUniqueViolation(err); ok {
		switch constraint {
		case "users_username_key":
			return domain.ErrDuplicateUsername
		case "users_email_key":
			return domain.ErrDuplicateEmail
		case "users_shop_id_key":
			return domain.ErrShopAlreadyManaged
		}
	}
	if constraint, ok := isForeignKeyViolation(err); ok && constraint == "users_shop_id_fkey" {
		return domain.ErrUnknownShop
	}
	return fmt.Errorf("%s: %w", op, err)
}

// nullable maps an empty id to SQL NULL.
func nullable(id string) any {
	if id == "" {
		return nil
	}
	return id
}
