// Package main is the entry point for the Priston Codex API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"pristoncodex/internal/cache"
	"pristoncodex/internal/config"
	"pristoncodex/internal/database"
	"pristoncodex/internal/handlers"
	"pristoncodex/internal/middleware"
	"pristoncodex/internal/router"
	"pristoncodex/internal/storage"
	"pristoncodex/internal/store"
)

func main() {
	// Load configuration from environment variables and an optional .env.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: text in development, JSON everywhere else.
	var logHandler slog.Handler
	if cfg.IsDev() {
		logHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		logHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(logHandler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the response cache. The API works without it.
	var valkeyClient *redis.Client
	valkeyClient, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, response cache disabled", "error", err)
		valkeyClient = nil
	} else {
		defer valkeyClient.Close()
	}
	responseCache := cache.NewResponseCache(valkeyClient, cfg.CacheTTL)
	// Cached lists from a previous run may predate the migrations or seed.
	responseCache.InvalidateAll(context.Background())

	// Connect to S3-compatible object storage (optional, uploads answer 503 without it).
	var uploader handlers.Uploader
	if cfg.StorageEnabled() {
		storageClient, err := storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			uploader = storageClient
			slog.Info("s3 storage connected",
				"endpoint", cfg.S3Endpoint,
				"bucket", storageClient.Bucket(),
			)
		}
	} else {
		slog.Warn("s3 storage not configured, download uploads disabled")
	}

	// Initialize data stores.
	stores := handlers.Stores{
		Categories: store.NewCategoryStore(db),
		Posts:      store.NewPostStore(db),
		Comments:   store.NewCommentStore(db),
		Downloads:  store.NewDownloadStore(db),
		Menus:      store.NewMenuStore(db),
		Users:      store.NewUserStore(db),
	}
	stores.Statistics = store.NewStatisticsStore(stores.Posts, stores.Downloads, stores.Users)

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(stores, responseCache)
	adminHandlers := handlers.NewAdmin(stores, responseCache, uploader)
	authHandlers := handlers.NewAuth(stores.Users)

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit, time.Minute)
	authLimiter.TrustProxy = cfg.TrustProxy
	defer authLimiter.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(publicHandlers, adminHandlers, authHandlers, router.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AuthLimiter:    authLimiter,
	})

	// WriteTimeout must accommodate 50 MB uploads relayed to object storage.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
