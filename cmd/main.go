package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"docsuite-ads/internal/adapter/auth"
	"docsuite-ads/internal/adapter/cache"
	"docsuite-ads/internal/adapter/catalog"
	httpadapter "docsuite-ads/internal/adapter/http"
	"docsuite-ads/internal/adapter/jsonstore"
	"docsuite-ads/internal/adapter/postgres"
	"docsuite-ads/internal/adapter/render"
	"docsuite-ads/internal/adapter/usecase"
	"docsuite-ads/internal/config"
	"docsuite-ads/internal/config/configs"
	"docsuite-ads/internal/core/port"
	"docsuite-ads/internal/db"
)

// main is the entry point of the ad server. It loads configuration, opens
// the configured campaign store, optionally seeds it, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server. "hash-password" instead reads a password from stdin and prints
// its bcrypt hash for AUTH_ADMIN_PASSWORD_HASH.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if err := hashPassword(os.Stdin, os.Stdout); err != nil {
			slog.Error("failed to hash password", slog.Any("error", err))
			return
		}
		exitCode = 0
		return
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewSlog()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("campaign store error", slog.Any("error", err))
		return
	}
	defer closeStore()

	if cfg.Store.SeedFile != "" {
		if err = db.Seed(ctx, store, cfg.Store.SeedFile, logger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
	}

	var authn httpadapter.Authenticator
	if cfg.Auth.Enabled() {
		authn = auth.NewService(cfg.Auth)
	} else {
		logger.Warn("admin API is running without authentication")
	}

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Ads:            usecase.NewAdUseCase(store, logger),
		Admin:          usecase.NewAdminUseCase(store, catalog.NewScanner(cfg.Catalog.AssetsDir, cfg.Catalog.URLPrefix), logger),
		Renderer:       render.New(logger),
		Auth:           authn,
		Logger:         logger,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return
	}
	logger.Info("server gracefully stopped")
	exitCode = 0
}

// openStore builds the configured CampaignStore, wrapped in the document
// cache when a TTL is set. The returned func releases it.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignStore, func(), error) {
	var (
		store   port.CampaignStore
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Store.Driver {
	case configs.StoreDriverPostgres:
		// Optionally run migrations if configured. We use the Psql sub‑config.
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		closers = append(closers, pool.Close)
		store = postgres.NewDocumentStore(pool, logger)
	default:
		fs, err := jsonstore.New(cfg.Store.DataDir, logger)
		if err != nil {
			return nil, nil, err
		}
		store = fs
	}

	if cfg.Store.CacheTTL > 0 {
		cached, err := cache.New(ctx, store, cfg.Store.CacheTTL, logger)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("document cache: %w", err)
		}
		closers = append(closers, func() { _ = cached.Close() })
		store = cached
	}
	return store, closeAll, nil
}
