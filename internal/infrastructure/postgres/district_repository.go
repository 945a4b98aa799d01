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

var _ repository.DistrictRepository = (*DistrictRepo)(nil)

// DistrictRepo implements repository.DistrictRepository on PostgreSQL.
type DistrictRepo struct {
	q Querier
}

// NewDistrictRepository builds the district adapter. Pass a pool or a tx.
func NewDistrictRepository(q Querier) *DistrictRepo {
	return &DistrictRepo{q: q}
}

// Create persists a new district.
func (r *DistrictRepo) Create(ctx context.Context, d *entity.District) error {
	query := `INSERT INTO districts (id, name, created_at) VALUES ($1, $2, $3)`
	if _, err := r.q.Exec(ctx, query, d.ID, d.Name, d.CreatedAt); err != nil {
		return mapDistrictWriteError(err)
	}
	return nil
}

// GetByID returns nil, nil when the district does not exist.
func (r *DistrictRepo) GetByID(ctx context.Context, id string) (*entity.District, error) {
	query := `SELECT id, name, created_at FROM districts WHERE id = $1`
	var d entity.District
	err := r.q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get district: %w", err)
	}
	return &d, nil
}

// List returns all districts ordered by name.
func (r *DistrictRepo) List(ctx context.Context) ([]*entity.District, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM districts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}
	defer rows.Close()
	var list []*entity.District
	for rows.Next() {
		var d entity.District
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan district: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Count returns the number of districts.
func (r *DistrictRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, `SELECT COUNT(*) FROM districts`)
}

func count(ctx context.Context, q Querier, query string, args ...any) (int, error) {
	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func mapDistrictWriteError(err error) error {
	if constraint, ok := isUniqueViolation(err); ok && constraint == "districts_name_key" {
		return domain.ErrDuplicateDistrict
	}
	return fmt.Errorf("insert district: %w", err)
}
