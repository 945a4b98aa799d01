// Package bootstrap wires storage, use cases and the seeder together for the binaries.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/rationshop-api/internal/application/analytics"
	"github.com/jhoicas/rationshop-api/internal/application/auth"
	"github.com/jhoicas/rationshop-api/internal/application/inventory"
	"github.com/jhoicas/rationshop-api/internal/application/organization"
	"github.com/jhoicas/rationshop-api/internal/application/seed"
	"github.com/jhoicas/rationshop-api/internal/application/usecase"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
	"github.com/jhoicas/rationshop-api/internal/infrastructure/memory"
	"github.com/jhoicas/rationshop-api/internal/infrastructure/metrics"
	"github.com/jhoicas/rationshop-api/internal/infrastructure/postgres"
	"github.com/jhoicas/rationshop-api/pkg/config"
	"github.com/jhoicas/rationshop-api/pkg/logger"
)

// Repositories is one storage backend.
type Repositories struct {
	Districts repository.DistrictRepository
	Users     repository.UserRepository
	Shops     repository.ShopRepository
	Products  repository.ProductRepository
	Stock     repository.StockRepository
	Tx        organization.TxRunner
}

// MemoryRepositories backs every port with store.
func MemoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		Districts: memory.NewDistrictRepository(store),
		Users:     memory.NewUserRepository(store),
		Shops:     memory.NewShopRepository(store),
		Products:  memory.NewProductRepository(store),
		Stock:     memory.NewStockRepository(store),
		Tx:        memory.NewTxRunner(store),
	}
}

// OpenStorage connects the backend chosen by cfg.DB.Driver. The returned close func is
// never nil.
func OpenStorage(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (Repositories, func(), error) {
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn().Msg("using in-memory storage, data is lost on exit")
		return MemoryRepositories(memory.NewStore()), func() {}, nil
	case config.DriverPostgres, "":
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return Repositories{}, nil, err
		}
		if cfg.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return Repositories{}, nil, err
			}
			log.Info().Msg("database schema is up to date")
		}
		return Repositories{
			Districts: postgres.NewDistrictRepository(pool),
			Users:     postgres.NewUserRepository(pool),
			Shops:     postgres.NewShopRepository(pool),
			Products:  postgres.NewProductRepository(pool),
			Stock:     postgres.NewStockRepository(pool),
			Tx:        postgres.NewTxRunner(pool),
		}, pool.Close, nil
	default:
		return Repositories{}, nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Driver)
	}
}

// Services are the use cases built on one backend.
type Services struct {
	Auth         *auth.UseCase
	Users        *usecase.UserUseCase
	Products     *usecase.ProductUseCase
	Organization *organization.UseCase
	Inventory    *inventory.UseCase
	Dashboard    *analytics.DashboardUseCase
	Ledger       *inventory.Ledger
}

// NewServices builds the use cases. m and sheets may be nil: no ledger metrics and no PDF
// export respectively.
func NewServices(repos Repositories, jwtCfg auth.JWTConfig, sheets inventory.StockSheetGenerator, m *metrics.Metrics) *Services {
	stock := repos.Stock
	if m != nil {
		stock = m.InstrumentStock(stock)
	}
	ledger := inventory.NewLedger(stock, repos.Products)
	return &Services{
		Auth:         auth.NewUseCase(repos.Users, jwtCfg),
		Users:        usecase.NewUserUseCase(repos.Users),
		Products:     usecase.NewProductUseCase(repos.Products),
		Organization: organization.NewUseCase(repos.Districts, repos.Shops, repos.Tx),
		Inventory:    inventory.NewUseCase(ledger, repos.Shops, sheets),
		Dashboard:    analytics.NewDashboardUseCase(repos.Districts, repos.Shops, repos.Products, repos.Users),
		Ledger:       ledger,
	}
}

// Seeder writes seed data through the same use cases.
func (s *Services) Seeder(repos Repositories, log *logger.Logger) *seed.Seeder {
	return seed.New(seed.Deps{
		Districts:    repos.Districts,
		Products:     repos.Products,
		Users:        repos.Users,
		Shops:        repos.Shops,
		Organization: s.Organization,
		Ledger:       s.Ledger,
		Log:          log,
	})
}

// SeedOptions maps the seed section of the configuration.
func SeedOptions(cfg config.SeedConfig) seed.Options {
	return seed.Options{
		AdminUsername:   cfg.AdminUsername,
		AdminPassword:   cfg.AdminPassword,
		AdminEmail:      cfg.AdminEmail,
		SampleShops:     cfg.SampleShops,
		ManagerPassword: cfg.ManagerPassword,
	}
}
