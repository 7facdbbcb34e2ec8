// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/shelfwise/internal/api"
	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/database"
	"github.com/tomtom215/shelfwise/internal/logging"
	"github.com/tomtom215/shelfwise/internal/metrics"
	"github.com/tomtom215/shelfwise/internal/supervisor"
	"github.com/tomtom215/shelfwise/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("data_dir", cfg.Data.Dir).
		Str("duckdb_path", cfg.Data.DuckDBPath).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Shelfwise")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Shelfwise stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires the process together and blocks until a shutdown signal.
func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(&cfg.Data)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	// Bridges zerolog to slog for sutureslog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	live, err := initRecommend(ctx, cfg, db, tree, logging.WithComponent("recommend"))
	if err != nil {
		return err
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	for _, origin := range cfg.Security.CORSOrigins {
		if origin == "*" && cfg.IsProduction() {
			logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*) in production")
			break
		}
	}

	handler := api.NewHandler(live, db, cfg)
	handler.SetVersion(version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	if path := config.ConfigFilePath(); path != "" {
		tree.AddDataService(services.NewConfigWatchService(path, reloadLogLevel, logging.WithComponent("config")))
		logging.Info().Str("path", path).Msg("Config watcher added to supervisor tree")
	}

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	err = tree.Serve(ctx)

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}
	return nil
}

// reloadLogLevel re-reads configuration after the file changes and applies
// the new log level. Other settings take effect on restart.
func reloadLogLevel() {
	newCfg, err := config.Load()
	if err != nil {
		logging.Warn().Err(err).Msg("Ignoring invalid config change")
		return
	}
	logging.SetLevelString(newCfg.Logging.Level)
	logging.Info().Str("level", newCfg.Logging.Level).Msg("Log level reloaded")
}
