// Package seed loads the reference data (districts, catalog, first administrator) and an
// optional demo organization. Running it twice changes nothing.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/application/inventory"
	"github.com/jhoicas/rationshop-api/internal/application/organization"
	"github.com/jhoicas/rationshop-api/internal/application/usecase"
	"github.com/jhoicas/rationshop-api/internal/domain"
	"github.com/jhoicas/rationshop-api/internal/domain/access"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
	"github.com/jhoicas/rationshop-api/pkg/logger"
)

var (
	Districts = []string{"Chennai", "Coimbatore", "Madurai"}
	Products  = []string{"Rice", "Wheat", "Sugar", "Oil", "Salt"}
)

type sampleShop struct {
	name, district, address string
	stock                   map[string]string
}

var sampleShops = []sampleShop{
	{"Anna Nagar Ration Shop", "Chennai", "1st Main Road, Anna Nagar",
		map[string]string{"Rice": "500", "Wheat": "300", "Sugar": "200", "Oil": "150", "Salt": "100"}},
	{"T Nagar Ration Shop", "Chennai", "North Usman Road, T Nagar",
		map[string]string{"Rice": "400", "Wheat": "250", "Sugar": "150"}},
	{"RS Puram Ration Shop", "Coimbatore", "DB Road, RS Puram",
		map[string]string{"Rice": "600", "Oil": "200"}},
}

// Options mirrors config.SeedConfig.
type Options struct {
	AdminUsername   string
	AdminPassword   string
	AdminEmail      string
	SampleShops     bool
	ManagerPassword string
}

// Report counts what a run created.
type Report struct {
	Districts int
	Products  int
	Admin     bool
	Shops     int
	Managers  int
	Stock     int
}

// Deps are the ports and use cases the seeder writes through.
type Deps struct {
	Districts    repository.DistrictRepository
	Products     repository.ProductRepository
	Users        repository.UserRepository
	Shops        repository.ShopRepository
	Organization *organization.UseCase
	Ledger       *inventory.Ledger
	Log          *logger.Logger
}

// Seeder writes the seed data.
type Seeder struct {
	d Deps
}

// New builds a seeder.
func New(d Deps) *Seeder {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return &Seeder{d: d}
}

// Run seeds reference data, then the admin, then (optionally) the demo shops.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Report, error) {
	rep := &Report{}
	districtIDs, err := s.districts(ctx, rep)
	if err != nil {
		return nil, err
	}
	productIDs, err := s.products(ctx, rep)
	if err != nil {
		return nil, err
	}
	admin, err := s.admin(ctx, opts, rep)
	if err != nil {
		return nil, err
	}
	if opts.SampleShops {
		if err := s.sample(ctx, admin, opts, districtIDs, productIDs, rep); err != nil {
			return nil, err
		}
	}
	s.d.Log.Info().
		Int("districts", rep.Districts).Int("products", rep.Products).Bool("admin", rep.Admin).
		Int("shops", rep.Shops).Int("managers", rep.Managers).Int("stock", rep.Stock).
		Msg("seed finished")
	return rep, nil
}

func (s *Seeder) districts(ctx context.Context, rep *Report) (map[string]string, error) {
	ids := map[string]string{}
	existing, err := s.d.Districts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed districts: %w", err)
	}
	for _, d := range existing {
		ids[d.Name] = d.ID
	}
	for _, name := range Districts {
		if _, ok := ids[name]; ok {
			continue
		}
		d := &entity.District{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
		if err := s.d.Districts.Create(ctx, d); err != nil {
			return nil, fmt.Errorf("seed district %s: %w", name, err)
		}
		ids[name] = d.ID
		rep.Districts++
	}
	return ids, nil
}

func (s *Seeder) products(ctx context.Context, rep *Report) (map[string]string, error) {
	ids := map[string]string{}
	existing, err := s.d.Products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed products: %w", err)
	}
	for _, p := range existing {
		ids[p.Name] = p.ID
	}
	for _, name := range Products {
		if _, ok := ids[name]; ok {
			continue
		}
		p := &entity.Product{ID: uuid.New().String(), Name: name}
		if err := s.d.Products.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("seed product %s: %w", name, err)
		}
		ids[name] = p.ID
		rep.Products++
	}
	return ids, nil
}

func (s *Seeder) admin(ctx context.Context, opts Options, rep *Report) (access.Identity, error) {
	username := entity.NormalizeUsername(opts.AdminUsername)
	existing, err := s.d.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	if existing != nil {
		if existing.Role != entity.RoleAdmin {
			return nil, fmt.Errorf("seed admin: user %q exists and is not an admin", username)
		}
		return access.Admin{ID: existing.ID}, nil
	}
	if opts.AdminPassword == "" {
		return nil, errors.New("seed admin: SEED_ADMIN_PASSWORD is required to create the first administrator")
	}
	user, err := usecase.NewUser(dto.CreateUserRequest{
		Username: username,
		Email:    opts.AdminEmail,
		Password: opts.AdminPassword,
		Role:     entity.RoleAdmin,
		Name:     "System Administrator",
	})
	if err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	if err := s.d.Users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	rep.Admin = true
	return access.Admin{ID: user.ID}, nil
}

func (s *Seeder) sample(ctx context.Context, admin access.Identity, opts Options,
	districtIDs, productIDs map[string]string, rep *Report) error {
	for i, sample := range sampleShops {
		shopID, created, err := s.shop(ctx, admin, sample, districtIDs[sample.district])
		if err != nil {
			return err
		}
		if created {
			rep.Shops++
		}

		if i == 0 && opts.ManagerPassword != "" {
			_, err := s.d.Organization.AssignManager(ctx, admin, dto.AssignManagerRequest{
				ShopID:   shopID,
				Username: "manager1",
				Email:    "manager1@rationshop.local",
				Password: opts.ManagerPassword,
				Name:     "Ramesh Kumar",
				Contact:  "8765432109",
			})
			switch {
			case err == nil:
				rep.Managers++
			case errors.Is(err, domain.ErrShopAlreadyManaged), errors.Is(err, domain.ErrDuplicateUsername):
			default:
				return fmt.Errorf("seed manager: %w", err)
			}
		}

		for _, product := range Products {
			qty, ok := sample.stock[product]
			if !ok {
				continue
			}
			_, err := s.d.Ledger.AddProduct(ctx, shopID, productIDs[product], qty)
			switch {
			case err == nil:
				rep.Stock++
			case errors.Is(err, domain.ErrAlreadyStocked):
			default:
				return fmt.Errorf("seed stock %s/%s: %w", sample.name, product, err)
			}
		}
	}
	return nil
}

// shop returns the id of the sample shop, creating it when the district has none by that name.
func (s *Seeder) shop(ctx context.Context, admin access.Identity, sample sampleShop, districtID string) (string, bool, error) {
	existing, err := s.d.Shops.ListDetailsByDistrict(ctx, districtID)
	if err != nil {
		return "", false, fmt.Errorf("seed shop %s: %w", sample.name, err)
	}
	for _, sh := range existing {
		if sh.Name == sample.name {
			return sh.ID, false, nil
		}
	}
	out, err := s.d.Organization.CreateShop(ctx, admin, dto.CreateShopRequest{
		Name:       sample.name,
		DistrictID: districtID,
		Address:    sample.address,
	})
	if err != nil {
		return "", false, fmt.Errorf("seed shop %s: %w", sample.name, err)
	}
	return out.ID, true, nil
}
