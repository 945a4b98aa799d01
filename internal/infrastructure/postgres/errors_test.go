package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rationshop-api/internal/domain"
)

func unique(constraint string) error {
	return &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: constraint}
}

func foreignKey(constraint string) error {
	return &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: constraint}
}

func TestPgErrorClassifiers(t *testing.T) {
	wrapped := fmt.Errorf("exec: %w", unique("users_email_key"))

	constraint, ok := isUniqueViolation(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "users_email_key", constraint)
	_, ok = isForeignKeyViolation(wrapped)
	assert.False(t, ok)

	constraint, ok = isForeignKeyViolation(foreignKey("stock_shop_id_fkey"))
	assert.True(t, ok)
	assert.Equal(t, "stock_shop_id_fkey", constraint)

	assert.True(t, isInvalidText(fmt.Errorf("scan: %w", &pgconn.PgError{Code: codeInvalidText})))
	assert.False(t, isInvalidText(pgx.ErrNoRows))
	assert.False(t, isInvalidText(unique("x")))

	assert.True(t, isNumericOutOfRange(&pgconn.PgError{Code: codeNumericOutOfRange}))
	assert.False(t, isNumericOutOfRange(errors.New("numeric field overflow")))
}

func TestMapStockWriteError(t *testing.T) {
	cases := map[string]struct {
		in   error
		want error
	}{
		"duplicate pair":    {unique("stock_pkey"), domain.ErrAlreadyStocked},
		"unknown product":   {foreignKey("stock_product_id_fkey"), domain.ErrUnknownProduct},
		"unknown shop":      {foreignKey("stock_shop_id_fkey"), domain.ErrUnknownShop},
		"negative quantity": {&pgconn.PgError{Code: "23514", ConstraintName: "stock_quantity_check"}, domain.ErrInvalidQuantity},
		"numeric overflow":  {&pgconn.PgError{Code: codeNumericOutOfRange}, domain.ErrInvalidQuantity},
		"wrapped":           {fmt.Errorf("query: %w", foreignKey("stock_shop_id_fkey")), domain.ErrUnknownShop},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, mapStockWriteError(tc.in), tc.want)
		})
	}

	other := errors.New("connection reset")
	assert.ErrorIs(t, mapStockWriteError(other), other)
	assert.Equal(t, domain.KindStorage, domain.KindOf(mapStockWriteError(other)))
}

func TestMapUserWriteError(t *testing.T) {
	cases := map[string]struct {
		in   error
		want error
	}{
		"username":     {unique("users_username_key"), domain.ErrDuplicateUsername},
		"email":        {unique("users_email_key"), domain.ErrDuplicateEmail},
		"shop managed": {unique("users_shop_id_key"), domain.ErrShopAlreadyManaged},
		"unknown shop": {foreignKey("users_shop_id_fkey"), domain.ErrUnknownShop},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, mapUserWriteError(tc.in, "insert user"), tc.want)
		})
	}

	err := mapUserWriteError(unique("users_pkey"), "insert user")
	assert.EqualError(t, err, "insert user: "+unique("users_pkey").Error())
	assert.Equal(t, domain.KindStorage, domain.KindOf(err))
}

func TestMapShopWriteError(t *testing.T) {
	assert.ErrorIs(t, mapShopWriteError(unique("shops_manager_id_key"), "set shop manager"), domain.ErrShopAlreadyManaged)
	assert.ErrorIs(t, mapShopWriteError(foreignKey("shops_district_id_fkey"), "insert shop"), domain.ErrUnknownDistrict)

	other := foreignKey("shops_manager_id_fkey")
	err := mapShopWriteError(other, "set shop manager")
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, domain.ErrUnknownDistrict)
}

func TestMapCatalogWriteErrors(t *testing.T) {
	assert.ErrorIs(t, mapDistrictWriteError(unique("districts_name_key")), domain.ErrDuplicateDistrict)
	assert.ErrorIs(t, mapProductWriteError(unique("products_name_key")), domain.ErrDuplicateProduct)

	down := errors.New("pool closed")
	assert.ErrorIs(t, mapDistrictWriteError(down), down)
	assert.ErrorIs(t, mapProductWriteError(down), down)
	assert.NotErrorIs(t, mapProductWriteError(unique("products_pkey")), domain.ErrDuplicateProduct)
}
