// Package analytics builds the read-only summaries shown on the admin landing page.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
	"github.com/jhoicas/rationshop-api/internal/domain/access"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

// DashboardUseCase aggregates the organization counts.
type DashboardUseCase struct {
	districts repository.DistrictRepository
	shops     repository.ShopRepository
	products  repository.ProductRepository
	users     repository.UserRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(
	districts repository.DistrictRepository,
	shops repository.ShopRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
) *DashboardUseCase {
	return &DashboardUseCase{districts: districts, shops: shops, products: products, users: users}
}

// GetSummary runs the four counts and the district list concurrently.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, id access.Identity) (*dto.AdminDashboardResponse, error) {
	if err := access.Require(id, access.OpAdminDashboard); err != nil {
		return nil, err
	}

	type countResult struct {
		n   int
		err error
	}
	type districtsResult struct {
		list []*entity.District
		err  error
	}
	count := func(f func(context.Context) (int, error)) <-chan countResult {
		ch := make(chan countResult, 1)
		go func() {
			n, err := f(ctx)
			ch <- countResult{n, err}
		}()
		return ch
	}

	districtCh := count(uc.districts.Count)
	shopCh := count(uc.shops.Count)
	productCh := count(uc.products.Count)
	managerCh := count(func(ctx context.Context) (int, error) {
		return uc.users.CountByRole(ctx, entity.RoleManager)
	})
	listCh := make(chan districtsResult, 1)
	go func() {
		list, err := uc.districts.List(ctx)
		listCh <- districtsResult{list, err}
	}()

	districts, shops, products, managers, list := <-districtCh, <-shopCh, <-productCh, <-managerCh, <-listCh
	for _, r := range []struct {
		what string
		err  error
	}{
		{"districts", districts.err},
		{"shops", shops.err},
		{"products", products.err},
		{"managers", managers.err},
		{"district list", list.err},
	} {
		if r.err != nil {
			return nil, fmt.Errorf("dashboard: %s: %w", r.what, r.err)
		}
	}

	return &dto.AdminDashboardResponse{
		DistrictCount: districts.n,
		ShopCount:     shops.n,
		ProductCount:  products.n,
		ManagerCount:  managers.n,
		Districts:     dto.NewDistrictResponses(list.list),
	}, nil
}
