// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/recommend"
	"github.com/tomtom215/shelfwise/internal/supervisor"
	"github.com/tomtom215/shelfwise/internal/supervisor/services"
)

// catalogLoader reads a dataset directory. *database.DB satisfies it.
type catalogLoader interface {
	LoadCatalog(ctx context.Context, dir string) (recommend.Datasets, error)
}

// catalogReloader re-reads the data directory into a Live recommender.
type catalogReloader struct {
	loader catalogLoader
	dir    string
	live   *recommend.Live
}

// Reload implements services.CatalogReloader. On error the served catalog
// is left untouched.
func (c *catalogReloader) Reload(ctx context.Context) error {
	catalog, err := c.loader.LoadCatalog(ctx, c.dir)
	if err != nil {
		return fmt.Errorf("reload catalog from %s: %w", c.dir, err)
	}
	if _, ok := catalog[recommend.DatasetBooks]; !ok {
		return fmt.Errorf("reload catalog from %s: %w: %s", c.dir, recommend.ErrMissingDataset, recommend.DatasetBooks)
	}
	return c.live.Replace(catalog)
}

// buildRecommendConfig maps application config onto recommender defaults.
func buildRecommendConfig(cfg *config.Config) *recommend.Config {
	rc := recommend.DefaultConfig()
	r := cfg.Recommend

	rc.Defaults.N = r.DefaultN
	rc.Defaults.ReferenceYear = r.ReferenceYear
	rc.Defaults.TrendingYears = r.TrendingYears
	rc.Defaults.LastDays = r.LastDays
	rc.Defaults.DateColumn = r.DateColumn
	rc.Defaults.WeightPopularity = r.WeightPopularity
	rc.Defaults.WeightRating = r.WeightRating
	rc.Defaults.GenreMethod = recommend.Method(r.GenreMethod)
	rc.Limits.MaxN = r.MaxN
	rc.Cache.Size = r.CacheSize
	rc.Cache.TTL = r.CacheTTL

	return rc
}

// initRecommend loads the catalog and builds the live recommender. When a
// reload interval is configured the reload service joins the data layer.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(ctx context.Context, cfg *config.Config, loader catalogLoader, tree *supervisor.SupervisorTree, logger zerolog.Logger) (*recommend.Live, error) {
	catalog, err := loader.LoadCatalog(ctx, cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	live, err := recommend.NewLive(catalog, buildRecommendConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("create recommender: %w", err)
	}

	logger.Info().
		Strs("datasets", catalog.Names()).
		Int("default_n", cfg.Recommend.DefaultN).
		Int("max_n", cfg.Recommend.MaxN).
		Str("genre_method", cfg.Recommend.GenreMethod).
		Msg("Recommender initialized")

	if cfg.Data.ReloadInterval > 0 && tree != nil {
		reloader := &catalogReloader{loader: loader, dir: cfg.Data.Dir, live: live}
		tree.AddDataService(services.NewCatalogReloadService(reloader, services.CatalogReloadConfig{
			Interval: cfg.Data.ReloadInterval,
		}, logger))
		logger.Info().Dur("interval", cfg.Data.ReloadInterval).Msg("Catalog reload service added to supervisor tree")
	}

	return live, nil
}
