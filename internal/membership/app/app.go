package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	httpapi "github.com/aussiebroadwan/barcommun/internal/membership/http"
	"github.com/aussiebroadwan/barcommun/internal/membership/observability"
	"github.com/aussiebroadwan/barcommun/internal/membership/service"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/postgres"
	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/sqlite"
	"github.com/aussiebroadwan/barcommun/pkg/cachex"
	"github.com/aussiebroadwan/barcommun/pkg/httpx"
	"github.com/aussiebroadwan/barcommun/pkg/jwtx"
	"github.com/aussiebroadwan/barcommun/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the membership service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	redis    *redis.Client // nil when caching is off
	keys     *jwtx.KeySet
	verifier jwtx.Verifier
	metrics  *observability.Metrics

	// Services
	userService           *service.UserService
	membershipService     *service.MembershipService
	userMembershipService *service.UserMembershipService
	rolesService          *service.RolesService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "membership-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: observability.NewMetrics(),
	}

	// A role without a matrix entry grants nothing. Worth knowing at boot.
	if gaps := authz.MatrixGaps(); len(gaps) > 0 {
		app.logger.Error("roles without permission matrix entry", "roles", gaps)
	}

	keys, verifier, err := LoadVerificationKeys(cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token verification: %w", err)
	}
	app.keys, app.verifier = keys, verifier

	ctx := context.Background()
	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	app.initCache(ctx)
	app.initServices()

	if err := app.initHTTP(); err != nil {
		_ = app.close()
		return nil, err
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("membership service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down membership service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.close(); err != nil {
		return err
	}

	app.logger.Info("membership service stopped")
	return nil
}

func (app *Application) close() error {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case "postgres":
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initCache connects to redis when configured. An unreachable cache is not
// fatal; plans are then read from the database.
func (app *Application) initCache(ctx context.Context) {
	if app.cfg.RedisAddr == "" {
		app.logger.Info("plan cache disabled")
		return
	}

	rdb, err := cachex.Connect(ctx, app.cfg.RedisAddr)
	if err != nil {
		app.logger.Warn("plan cache unavailable, continuing without it", "addr", app.cfg.RedisAddr, "error", err)
		return
	}
	app.redis = rdb
	app.logger.Info("plan cache enabled", "addr", app.cfg.RedisAddr, "ttl", app.cfg.CacheTTL)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}
	app.membershipService = &service.MembershipService{Store: app.db}
	app.userMembershipService = &service.UserMembershipService{Store: app.db}
	app.rolesService = &service.RolesService{Store: app.db}

	if app.redis != nil {
		app.membershipService.Cache = cachex.NewStore[domain.Membership](app.redis, "membership", app.cfg.CacheTTL)
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() error {
	httpx.ReadLimit = perMinute(app.cfg.ReadRateLimit)
	httpx.WriteLimit = perMinute(app.cfg.WriteRateLimit)

	router, err := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.metrics,
		app.logger,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize router: %w", err)
	}

	router.UserService = app.userService
	router.MembershipService = app.membershipService
	router.UserMembershipService = app.userMembershipService
	router.RolesService = app.rolesService
	if app.redis != nil {
		router.CachePing = func(ctx context.Context) error { return app.redis.Ping(ctx).Err() }
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}

// perMinute turns a requests-per-minute budget into a limit with a third of
// it available as burst. Zero disables limiting.
func perMinute(n int) httpx.RateLimitConfig {
	if n <= 0 {
		return httpx.RateLimitConfig{}
	}
	return httpx.RateLimitConfig{
		RequestsPerWindow: n,
		Window:            time.Minute,
		Burst:             max(n/3, 1),
	}
}
