package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rationshop-api/internal/application/inventory"
	"github.com/jhoicas/rationshop-api/internal/application/organization"
	"github.com/jhoicas/rationshop-api/internal/application/seed"
	"github.com/jhoicas/rationshop-api/internal/application/usecase"
	"github.com/jhoicas/rationshop-api/internal/infrastructure/memory"
)

func newSeeder(store *memory.Store) *seed.Seeder {
	districts := memory.NewDistrictRepository(store)
	shops := memory.NewShopRepository(store)
	products := memory.NewProductRepository(store)
	return seed.New(seed.Deps{
		Districts:    districts,
		Products:     products,
		Users:        memory.NewUserRepository(store),
		Shops:        shops,
		Organization: organization.NewUseCase(districts, shops, memory.NewTxRunner(store)),
		Ledger:       inventory.NewLedger(memory.NewStockRepository(store), products),
	})
}

var opts = seed.Options{
	AdminUsername:   "admin",
	AdminPassword:   "admin-password",
	AdminEmail:      "admin@rationshop.local",
	SampleShops:     true,
	ManagerPassword: "manager-password",
}

func TestRun_IsIdempotent(t *testing.T) {
	usecase.PasswordCost = bcrypt.MinCost
	ctx := context.Background()
	store := memory.NewStore()

	first, err := newSeeder(store).Run(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Districts)
	assert.Equal(t, 5, first.Products)
	assert.True(t, first.Admin)
	assert.Equal(t, 3, first.Shops)
	assert.Equal(t, 1, first.Managers)
	assert.Equal(t, 10, first.Stock)

	second, err := newSeeder(store).Run(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, seed.Report{}, *second)

	unmanaged, err := memory.NewShopRepository(store).ListWithoutManager(ctx)
	require.NoError(t, err)
	assert.Len(t, unmanaged, 2)
}

func TestRun_RequiresAdminPassword(t *testing.T) {
	_, err := newSeeder(memory.NewStore()).Run(context.Background(), seed.Options{AdminUsername: "admin"})
	assert.Error(t, err)
}
