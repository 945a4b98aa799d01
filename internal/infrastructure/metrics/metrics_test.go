package metrics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/infrastructure/memory"
	"github.com/jhoicas/rationshop-api/internal/infrastructure/metrics"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", metrics.Outcome(nil))
	assert.Equal(t, "conflict", metrics.Outcome(domain.ErrAlreadyStocked))
	assert.Equal(t, "invalid", metrics.Outcome(domain.ErrInvalidQuantity))
	assert.Equal(t, "not_found", metrics.Outcome(domain.ErrUnknownProduct))
	assert.Equal(t, "denied", metrics.Outcome(domain.ErrUnauthorized))
	assert.Equal(t, "error", metrics.Outcome(errors.New("connection reset")))
}

func TestInstrumentStock(t *testing.T) {
	ctx := context.Background()
	m := metrics.New()
	store := memory.NewStore()

	d := &entity.District{ID: uuid.NewString(), Name: "Chennai"}
	require.NoError(t, memory.NewDistrictRepository(store).Create(ctx, d))
	shop := &entity.Shop{ID: uuid.NewString(), Name: "Anna Nagar", DistrictID: d.ID}
	require.NoError(t, memory.NewShopRepository(store).Create(ctx, shop))
	rice := &entity.Product{ID: uuid.NewString(), Name: "Rice"}
	require.NoError(t, memory.NewProductRepository(store).Create(ctx, rice))

	stock := m.InstrumentStock(memory.NewStockRepository(store))
	entry := &entity.StockEntry{ShopID: shop.ID, ProductID: rice.ID, Quantity: decimal.NewFromInt(1)}
	_, err := stock.Insert(ctx, entry)
	require.NoError(t, err)
	_, err = stock.Insert(ctx, entry)
	require.ErrorIs(t, err, domain.ErrAlreadyStocked)
	_, err = stock.Upsert(ctx, entry)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LedgerWrites.WithLabelValues("add_product", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LedgerWrites.WithLabelValues("add_product", "conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LedgerWrites.WithLabelValues("set_quantity", "ok")))

	list, err := stock.ListByShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
