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
	"time"

	"github.com/lumina-reserve/backend/internal/appsscript"
	"github.com/lumina-reserve/backend/internal/auth"
	"github.com/lumina-reserve/backend/internal/config"
	"github.com/lumina-reserve/backend/internal/lib/logger/sl"
	"github.com/lumina-reserve/backend/internal/metrics"
	"github.com/lumina-reserve/backend/internal/repository"
	"github.com/lumina-reserve/backend/internal/service"
	"github.com/lumina-reserve/backend/internal/sheets"
	"github.com/lumina-reserve/backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting cafe backend",
		"app", cfg.AppName,
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"debug_mode", cfg.DebugMode,
	)

	ctx := context.Background()

	backend, err := newBackend(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize backend", sl.Err(err))
		os.Exit(1)
	}

	overrides, closeOverrides := newOverrideStore(cfg, log)
	defer closeOverrides()

	if !cfg.Admin.HashConfigured() {
		log.Warn("ADMIN_PASSWORD_HASH not configured, the admin panel cannot be unlocked")
	}

	m := metrics.New()
	data := service.NewDataService(backend, overrides, m, log)
	sessions := auth.NewSessions(auth.NewGate(cfg.Admin.PasswordHash))

	r := newRouter(routerDeps{
		appName:        cfg.AppName,
		allowedOrigins: cfg.CORS.AllowedOrigins,
		data:           data,
		stats:          service.NewStatsService(data),
		sessions:       sessions,
		ids:            service.NewEventIDs(),
		metrics:        m,
		log:            log,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr, "mode", data.Mode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", sl.Err(err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", sl.Err(err))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// newBackend picks the remote data source. A nil backend means demo mode.
func newBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) (service.Backend, error) {
	timeout := time.Duration(cfg.Backend.Timeout) * time.Second

	switch {
	case cfg.Backend.SpreadsheetID != "":
		credsJSON, err := os.ReadFile(cfg.Backend.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read Google credentials: %w", err)
		}
		client, err := sheets.New(ctx, sheets.Config{
			SpreadsheetID:   cfg.Backend.SpreadsheetID,
			CredentialsJSON: credsJSON,
			Timeout:         timeout,
		}, log)
		if err != nil {
			return nil, err
		}
		log.Info("using Google Sheets backend", "spreadsheet_id", cfg.Backend.SpreadsheetID, "timeout", timeout)
		return client, nil

	case cfg.Backend.APIURL != "":
		log.Info("using Apps Script backend", "timeout", timeout)
		return appsscript.New(cfg.Backend.APIURL, timeout, log), nil

	default:
		log.Warn("API_URL not configured, serving sample data (demo mode)")
		return nil, nil
	}
}

func newOverrideStore(cfg *config.Config, log *slog.Logger) (repository.OverrideStore, func()) {
	switch cfg.Overrides.Kind {
	case config.StoreRedis:
		store := repository.NewRedisOverrideStore(
			redis.NewClient(&redis.Options{Addr: cfg.Overrides.RedisAddr}),
			cfg.Overrides.Key,
		)
		log.Info("override store: redis", "addr", cfg.Overrides.RedisAddr, "key", cfg.Overrides.Key)
		return store, func() {
			if err := store.Close(); err != nil {
				log.Error("failed to close redis", sl.Err(err))
			}
		}
	case config.StoreMemory:
		log.Info("override store: memory")
		return repository.NewInMemoryOverrideStore(), func() {}
	default:
		log.Info("override store: file", "path", cfg.Overrides.FilePath)
		return repository.NewFileOverrideStore(cfg.Overrides.FilePath), func() {}
	}
}
