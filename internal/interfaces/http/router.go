package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/rationshop-api/internal/application/analytics"
	"github.com/jhoicas/rationshop-api/internal/application/auth"
	"github.com/jhoicas/rationshop-api/internal/application/inventory"
	"github.com/jhoicas/rationshop-api/internal/application/organization"
	"github.com/jhoicas/rationshop-api/internal/application/usecase"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
	"github.com/jhoicas/rationshop-api/internal/infrastructure/metrics"
	"github.com/jhoicas/rationshop-api/pkg/logger"
)

// RouterDeps holds what the router needs. Metrics and LoginLimiter are optional.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	UserUC         *usecase.UserUseCase
	ProductUC      *usecase.ProductUseCase
	OrganizationUC *organization.UseCase
	InventoryUC    *inventory.UseCase
	DashboardUC    *analytics.DashboardUseCase
	Metrics        *metrics.Metrics
	LoginLimiter   *LoginLimiter
	Log            *logger.Logger
	Cookie         SessionCookie
}

// NewApp builds a Fiber app with recover, request logging, metrics, /health and the API
// routes.
func NewApp(name string, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
	app.Use(recover.New())
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}
	if deps.Metrics != nil {
		app.Use(Observe(deps.Metrics))
	}
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": name})
	})
	Router(app, deps)
	return app
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	r := errorResponder{log: log}

	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	app.Get(LoginPath, LoginPage)

	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, deps.Metrics, r)
	authGroup := api.Group("/auth")
	if deps.LoginLimiter != nil {
		if deps.Metrics != nil && deps.LoginLimiter.OnReject == nil {
			throttled := deps.Metrics.LoginAttempts.WithLabelValues("throttled")
			deps.LoginLimiter.OnReject = throttled.Inc
		}
		authGroup.Post("/login", deps.LoginLimiter.Middleware(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)

	// Directory (public, no stock)
	public := NewPublicHandler(deps.OrganizationUC, deps.ProductUC, r)
	api.Get("/districts", public.ListDistricts)
	api.Get("/districts/:id/shops", public.ListDistrictShops)
	api.Get("/shops/:id", public.GetShop)
	api.Get("/products", public.ListProducts)

	authn := AuthMiddleware(deps.AuthUC, deps.Cookie.Name)

	stock := NewStockHandler(deps.InventoryUC, r)
	api.Get("/shops/:id/stock", authn, RequireRole(entity.RoleAdmin, entity.RoleManager), stock.ShopStock)

	profile := NewProfileHandler(deps.UserUC, r)
	api.Get("/profile", authn, profile.Get)
	api.Put("/profile", authn, profile.Update)

	admin := api.Group("/admin", authn, RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.OrganizationUC, deps.InventoryUC, deps.DashboardUC, r)
	admin.Get("/dashboard", adminHandler.Dashboard)
	admin.Post("/districts", adminHandler.CreateDistrict)
	admin.Post("/shops", adminHandler.CreateShop)
	admin.Get("/shops", adminHandler.ListShops)
	admin.Get("/shops/unmanaged", adminHandler.ListUnmanaged)
	admin.Get("/shops/:id", adminHandler.GetShop)
	admin.Get("/shops/:id/stock.pdf", adminHandler.StockSheet)
	admin.Post("/managers", adminHandler.AssignManager)

	branch := api.Group("/branch", authn, RequireRole(entity.RoleManager))
	branchHandler := NewBranchHandler(deps.InventoryUC, r)
	branch.Get("/dashboard", branchHandler.Dashboard)
	branch.Get("/unstocked", branchHandler.Unstocked)
	branch.Post("/stock", branchHandler.SetQuantity)
	branch.Post("/products", branchHandler.AddProduct)
	branch.Get("/stock.pdf", branchHandler.StockSheet)
}
