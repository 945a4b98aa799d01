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

var _ repository.ShopRepository = (*ShopRepo)(nil)

const (
	shopColumns = `s.id, s.name, s.district_id, COALESCE(s.manager_id::text, ''), s.address, s.created_at`

	shopDetailQuery = `
		SELECT ` + shopColumns + `,
		       d.name, COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(u.contact, '')
		FROM shops s
		JOIN districts d ON d.id = s.district_id
		LEFT JOIN users u ON u.id = s.manager_id`
)

// ShopRepo implements repository.ShopRepository on PostgreSQL.
type ShopRepo struct {
	q Querier
}

// NewShopRepository builds the shop adapter. Pass a pool or a tx.
func NewShopRepository(q Querier) *ShopRepo {
	return &ShopRepo{q: q}
}

// Create persists a new shop without manager.
func (r *ShopRepo) Create(ctx context.Context, shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, name, district_id, address, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, shop.ID, shop.Name, shop.DistrictID, shop.Address, shop.CreatedAt)
	if err != nil {
		return mapShopWriteError(err, "insert shop")
	}
	return nil
}

// GetByID returns nil, nil when the shop does not exist.
func (r *ShopRepo) GetByID(ctx context.Context, id string) (*entity.Shop, error) {
	return r.findOne(ctx, `SELECT `+shopColumns+` FROM shops s WHERE s.id = $1`, id)
}

// GetForUpdate locks the shop row (SELECT FOR UPDATE). Only meaningful inside a transaction.
func (r *ShopRepo) GetForUpdate(ctx context.Context, id string) (*entity.Shop, error) {
	return r.findOne(ctx, `SELECT `+shopColumns+` FROM shops s WHERE s.id = $1 FOR UPDATE`, id)
}

// SetManager links the manager to the shop if, and only if, the shop has none yet.
func (r *ShopRepo) SetManager(ctx context.Context, shopID, managerID string) error {
	query := `UPDATE shops SET manager_id = $2 WHERE id = $1 AND manager_id IS NULL`
	tag, err := r.q.Exec(ctx, query, shopID, managerID)
	if err != nil {
		return mapShopWriteError(err, "set shop manager")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrShopAlreadyManaged
	}
	return nil
}

// GetDetail returns the shop joined with district and manager, or nil, nil.
func (r *ShopRepo) GetDetail(ctx context.Context, id string) (*entity.ShopDetail, error) {
	var d entity.ShopDetail
	err := scanShopDetail(r.q.QueryRow(ctx, shopDetailQuery+` WHERE s.id = $1`, id), &d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop detail: %w", err)
	}
	return &d, nil
}

// ListDetails lists every shop ordered by district name and shop name.
func (r *ShopRepo) ListDetails(ctx context.Context) ([]*entity.ShopDetail, error) {
	return r.listDetails(ctx, shopDetailQuery+` ORDER BY d.name, s.name`)
}

// ListDetailsByDistrict lists the shops of one district ordered by name.
func (r *ShopRepo) ListDetailsByDistrict(ctx context.Context, districtID string) ([]*entity.ShopDetail, error) {
	return r.listDetails(ctx, shopDetailQuery+` WHERE s.district_id = $1 ORDER BY s.name`, districtID)
}

// ListWithoutManager lists the shops eligible for a manager assignment.
func (r *ShopRepo) ListWithoutManager(ctx context.Context) ([]*entity.ShopDetail, error) {
	return r.listDetails(ctx, shopDetailQuery+` WHERE s.manager_id IS NULL ORDER BY d.name, s.name`)
}

// Count returns the number of shops.
func (r *ShopRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, `SELECT COUNT(*) FROM shops`)
}

func (r *ShopRepo) findOne(ctx context.Context, query, id string) (*entity.Shop, error) {
	var s entity.Shop
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.DistrictID, &s.ManagerID, &s.Address, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return &s, nil
}

func (r *ShopRepo) listDetails(ctx context.Context, query string, args ...any) ([]*entity.ShopDetail, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		if isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()
	var list []*entity.ShopDetail
	for rows.Next() {
		var d entity.ShopDetail
		if err := scanShopDetail(rows, &d); err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		if isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list shops: %w", err)
	}
	return list, nil
}

func scanShopDetail(row pgx.Row, d *entity.ShopDetail) error {
	return row.Scan(
		&d.ID, &d.Name, &d.DistrictID, &d.ManagerID, &d.Address, &d.CreatedAt,
		&d.DistrictName, &d.ManagerName, &d.ManagerEmail, &d.ManagerContact,
	)
}

// mapShopWriteError translates constraint violations on shops into domain errors.
func mapShopWriteError(err error, op string) error {
	if constraint, ok := isUniqueViolation(err); ok && constraint == "shops_manager_id_key" {
		return domain.ErrShopAlreadyManaged
	}
	if constraint, ok := isForeignKeyViolation(err); ok && constraint == "shops_district_id_fkey" {
		return domain.ErrUnknownDistrict
	}
	return fmt.Errorf("%s: %w", op, err)
}
