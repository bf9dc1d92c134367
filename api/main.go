package main

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/aggregate"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/auth"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/cache"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/config"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/db"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/export"
	httpapi "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/http"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/http/handlers"
	rl "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/http/rate_limiter"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/logger"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/refresh"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/repo"
)

// @title Dark Store Dashboard Analytics API
// @version 1.0
// @description REST API for retail dark-store inventory analytics dashboards: operations, executive, supplier performance and demand forecasting.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	logger.New(cfg.App.Env, cfg.App.LogLevel)
	auth.Configure(cfg.JWT.Secret, cfg.JWT.Expiration)
	models.SetStockWarnFactor(cfg.Limits.StockWarnFactor)
	rl.Configure(cfg.HTTP.RateLimitPerSecond, cfg.HTTP.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	var snapshotCache *cache.SnapshotCache
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("could not connect to redis")
		}
		defer rdb.Close()
		snapshotCache = cache.NewSnapshotCache(rdb, cfg.Redis.TTL)
	}
	handlers.SetSnapshotCache(snapshotCache)

	inventoryRepo := repo.NewInMemoryInventoryRepository()
	alertRepo := repo.NewInMemoryAlertRepository()
	supplierRepo := repo.NewInMemorySupplierRepository()
	forecastRepo := repo.NewInMemoryForecastRepository()
	kpiRepo := repo.NewInMemoryKPIRepository()
	repo.SeedAll(inventoryRepo, alertRepo, supplierRepo, forecastRepo, kpiRepo)

	handlers.SetInventoryRepo(inventoryRepo)
	handlers.SetAlertRepo(alertRepo)
	handlers.SetSupplierRepo(supplierRepo)
	handlers.SetForecastRepo(forecastRepo)
	handlers.SetKPIRepo(kpiRepo)
	handlers.SetUserRepo(repo.NewInMemoryUserRepository())

	// Postgres replaces the seeded inventory and supplier feeds when a
	// connection string is configured.
	refreshFn := func() error {
		repo.SeedAll(inventoryRepo, alertRepo, supplierRepo, forecastRepo, kpiRepo)
		return nil
	}
	if cfg.DB.Enabled() {
		database, err := db.Connect(cfg.DB.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to database")
		}
		defer database.Close()

		pgInventory := repo.NewPostgresInventoryRepository(database)
		pgSupplier := repo.NewPostgresSupplierRepository(database)
		handlers.SetInventoryRepo(pgInventory)
		handlers.SetSupplierRepo(pgSupplier)
		handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
		refreshFn = func() error {
			// Reads go straight to the database; a tick only drops
			// cached view models so the next read is fresh.
			return nil
		}
	}

	handlers.SetClassifier(aggregate.NewClassifier(cfg.Limits))
	handlers.SetExportService(export.NewService(export.NewFileSink(cfg.App.ExportDir), log.Logger))

	poller := refresh.New(cfg.Refresh.Interval, func() error {
		if err := refreshFn(); err != nil {
			return err
		}
		if snapshotCache != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			for _, d := range []string{
				handlers.DashboardOperations,
				handlers.DashboardExecutive,
				handlers.DashboardSupplier,
				handlers.DashboardForecast,
			} {
				snapshotCache.Invalidate(ctx, d)
			}
		}
		return nil
	}, log.Logger)
	poller.SetEnabled(cfg.Refresh.Enabled)
	poller.Start(context.Background())
	defer poller.Stop()
	handlers.SetPoller(poller)

	r := httpapi.NewRouter()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("server running")
	if err := http.ListenAndServe(cfg.HTTP.Addr(), r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
