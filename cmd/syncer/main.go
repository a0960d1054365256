package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"matchsync/internal/config"
	"matchsync/internal/discovery"
	"matchsync/internal/invalidation"
	"matchsync/internal/scheduler"
	"matchsync/internal/server"
	"matchsync/internal/service"
	"matchsync/internal/source/statsport"
	"matchsync/internal/storage/postgres"
	redisstore "matchsync/internal/storage/redis"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration; fails before any network call when a secret is
	// missing.
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Snapshot store: Redis when configured, Postgres otherwise.
	var snapshots discovery.SnapshotStore = postgres.NewSnapshotStore(db)
	if cfg.Redis.URL != "" {
		redisClient, err := redisstore.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		snapshots = redisstore.NewSnapshotStore(redisClient)
		logger.Info("using redis snapshot store")
	}

	providerClient := statsport.New(statsport.Config{
		BaseURL:        cfg.Provider.BaseURL,
		APIKey:         cfg.Provider.APIKey,
		Timeout:        cfg.Provider.Timeout,
		MaxAttempts:    cfg.Provider.Retry.MaxAttempts,
		InitialBackoff: cfg.Provider.Retry.InitialBackoff,
		MaxBackoff:     cfg.Provider.Retry.MaxBackoff,
	}, logger)

	engine := discovery.NewEngine(providerClient, snapshots, cfg.Team, logger)
	discoveryCache := discovery.NewCache(engine, snapshots, cfg.Team.InternalID, cfg.Sync.DiscoveryTTL, logger)

	matchStore := postgres.NewMatchStore(db)
	syncService := service.NewSyncService(providerClient, matchStore, discoveryCache, logger, cfg.Sync)
	auditor := service.NewAuditor(matchStore, cfg.Team.DisplayName, logger)

	var invalidator invalidation.Invalidator = invalidation.NewLogInvalidator(logger)
	if cfg.Webhook.PurgeURL != "" {
		invalidator = invalidation.NewHTTPInvalidator(cfg.Webhook.PurgeURL, 10*time.Second, logger)
	}
	gateway := invalidation.NewGateway(cfg.Webhook.Secret, invalidator, logger)

	srv := server.New(syncService, auditor, discoveryCache, gateway, cfg.Sync.Secret, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Handler(),
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("starting match syncer",
		"team", cfg.Team.DisplayName,
		"interval", cfg.Sync.Interval,
	)

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, logger)
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
