package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/rationshop-api/internal/application/auth"
	"github.com/jhoicas/rationshop-api/internal/bootstrap"
	"github.com/jhoicas/rationshop-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/rationshop-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/rationshop-api/internal/interfaces/http"
	"github.com/jhoicas/rationshop-api/pkg/config"
	"github.com/jhoicas/rationshop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("starting application")

	ctx := context.Background()
	repos, closeStorage, err := bootstrap.OpenStorage(ctx, cfg.DB, log.Named("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("open storage")
	}
	defer closeStorage()

	m := metrics.New()
	sheets := infrapdf.NewMarotoStockSheetGenerator(cfg.App.Name)
	svc := bootstrap.NewServices(repos, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, sheets, m)

	// The in-memory backend starts empty on every run.
	if cfg.DB.Driver == config.DriverMemory {
		if _, err := svc.Seeder(repos, log.Named("seed")).Run(ctx, bootstrap.SeedOptions(cfg.Seed)); err != nil {
			log.Fatal().Err(err).Msg("seed in-memory storage")
		}
	}

	limiter := httpRouter.NewLoginLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)

	app := httpRouter.NewApp(cfg.App.Name, httpRouter.RouterDeps{
		AuthUC:         svc.Auth,
		UserUC:         svc.Users,
		ProductUC:      svc.Products,
		OrganizationUC: svc.Organization,
		InventoryUC:    svc.Inventory,
		DashboardUC:    svc.Dashboard,
		Metrics:        m,
		LoginLimiter:   limiter,
		Log:            log.Named("http"),
		Cookie: httpRouter.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.Secure,
			MaxAge: time.Duration(cfg.JWT.Expiration) * time.Minute,
		},
	})

	// Swagger UI: http://localhost:<port>/docs
	if cfg.HTTP.DocsPath != "" {
		if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.DocsPath,
				Path:     "docs",
				Title:    "Ration Shop API",
			}))
		} else {
			log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger document not found, /docs disabled")
		}
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
