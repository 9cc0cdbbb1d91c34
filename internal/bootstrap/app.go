// Package bootstrap assembles configuration, storage, cache, services, and
// the HTTP router into a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"churn-backend/internal/cards"
	"churn-backend/internal/paths"
	"churn-backend/internal/recommendations"
	"churn-backend/internal/services/health"
	"churn-backend/internal/shared/cache"
	"churn-backend/internal/shared/config"
	"churn-backend/internal/shared/server"
	"churn-backend/internal/shared/storage/db"
	"churn-backend/internal/wallet"
)

const cachePingTimeout = 2 * time.Second

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Cache  cache.Cache

	CardsRepo  cards.Repo
	WalletRepo wallet.Repo

	CardsService          *cards.Service
	WalletService         *wallet.Service
	RecommendationService *recommendations.Service

	CardsHandler          *cards.Handler
	WalletHandler         *wallet.Handler
	RecommendationHandler *recommendations.Handler
	PathsHandler          *paths.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Cache:  buildCache(ctx, cfg),
	}
	app.buildServices()

	app.Router = server.NewRouter(server.RouterDeps{
		Config:                app.Config,
		Health:                health.NewService(),
		CardsHandler:          app.CardsHandler,
		WalletHandler:         app.WalletHandler,
		RecommendationHandler: app.RecommendationHandler,
		PathsHandler:          app.PathsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

// buildCache prefers Redis when configured and reachable, otherwise an
// in-process cache. A dead Redis never blocks startup.
func buildCache(ctx context.Context, cfg config.Config) cache.Cache {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return cache.NewMemoryCache()
	}
	redisCache := cache.NewRedisCache(cfg.RedisAddr)
	pingCtx, cancel := context.WithTimeout(ctx, cachePingTimeout)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		log.Printf("bootstrap: redis unreachable at %s; using in-memory cache: %v", cfg.RedisAddr, err)
		return cache.NewMemoryCache()
	}
	return redisCache
}

func (app *App) buildServices() {
	if app.DB != nil {
		app.CardsRepo = &cards.PGRepo{DB: app.DB}
		app.WalletRepo = &wallet.PGRepo{DB: app.DB}
	} else {
		app.CardsRepo = cards.NewMemoryRepo()
		app.WalletRepo = wallet.NewMemoryRepo()
	}

	app.CardsService = &cards.Service{Repo: app.CardsRepo}
	app.WalletService = &wallet.Service{Repo: app.WalletRepo}
	app.RecommendationService = &recommendations.Service{
		Cards:        app.CardsRepo,
		Wallet:       app.WalletRepo,
		Cache:        app.Cache,
		CacheTTL:     app.Config.CacheTTL,
		DefaultLimit: app.Config.RecommendLimit,
	}
	app.WalletService.OnChange = app.RecommendationService.Invalidate

	app.CardsHandler = cards.NewHandler(app.CardsService)
	app.WalletHandler = wallet.NewHandler(app.WalletService)
	app.RecommendationHandler = recommendations.NewHandler(app.RecommendationService)
	app.PathsHandler = paths.NewHandler()
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
