// Package main is the entry point for the Gestão Financeira API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/gestao-financeira/backend/config"
	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/infra/cache"
	"github.com/gestao-financeira/backend/internal/infra/db"
	"github.com/gestao-financeira/backend/internal/infra/dependency"
	"github.com/gestao-financeira/backend/internal/integration/storage"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Server.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Gestão Financeira API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"timezone", cfg.Report.Location,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.Migrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, falling back to in-memory rate limiting", "error", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector, err := dependency.NewInjector(cfg, database.DB(), dependency.Options{
		Redis:   redisClient,
		Storage: newObjectStorage(ctx, cfg.Storage),
	})
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(ctx)
	}
	go injector.RunMaintenance(ctx)

	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newObjectStorage returns S3 storage when credentials are configured and
// in-memory storage otherwise.
func newObjectStorage(ctx context.Context, cfg config.StorageConfig) adapter.ObjectStorage {
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		slog.Warn("S3 credentials not set, logos are kept in memory")
		return storage.NewMemoryStorage()
	}

	s3Storage, err := storage.NewS3Storage(ctx, cfg)
	if err != nil {
		slog.Warn("S3 storage unavailable, logos are kept in memory", "error", err)
		return storage.NewMemoryStorage()
	}

	bucketCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s3Storage.EnsureBucket(bucketCtx); err != nil {
		slog.Warn("Failed to ensure storage bucket", "bucket", cfg.Bucket, "error", err)
	}
	return s3Storage
}
