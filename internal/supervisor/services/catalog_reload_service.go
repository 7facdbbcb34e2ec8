// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// defaultReloadTimeout bounds a single catalog reload.
const defaultReloadTimeout = 5 * time.Minute

// CatalogReloader re-reads the dataset directory and swaps in a new catalog.
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

// CatalogReloadConfig controls the reload schedule.
type CatalogReloadConfig struct {
	// Interval between reloads. Must be positive.
	Interval time.Duration

	// Timeout for one reload. Default: 5m
	Timeout time.Duration
}

// CatalogReloadService periodically refreshes the catalog so new snapshots
// in the data directory are served without a restart. A failed reload keeps
// the previous catalog in place.
type CatalogReloadService struct {
	reloader CatalogReloader
	config   CatalogReloadConfig
	logger   zerolog.Logger
	name     string
}

// NewCatalogReloadService creates a reload service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogReloadService(reloader CatalogReloader, cfg CatalogReloadConfig, logger zerolog.Logger) *CatalogReloadService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultReloadTimeout
	}
	return &CatalogReloadService{
		reloader: reloader,
		config:   cfg,
		logger:   logger.With().Str("service", "catalog-reload").Logger(),
		name:     "catalog-reload",
	}
}

// Serve implements suture.Service.
func (s *CatalogReloadService) Serve(ctx context.Context) error {
	if s.config.Interval <= 0 {
		s.logger.Info().Msg("catalog reload disabled")
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.config.Interval).Msg("catalog reload service running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if err := s.reload(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("catalog reload failed, keeping previous catalog")
			}
		}
	}
}

func (s *CatalogReloadService) reload(ctx context.Context) error {
	reloadCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	if err := s.reloader.Reload(reloadCtx); err != nil {
		return err
	}

	s.logger.Info().Dur("duration", time.Since(start)).Msg("catalog reloaded")
	return nil
}

// String names the service in supervisor events.
func (s *CatalogReloadService) String() string {
	return s.name
}
