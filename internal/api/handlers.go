// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"context"
	"time"

	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

// defaultRequestTimeout bounds a single ranking when the server timeout is unset.
const defaultRequestTimeout = 10 * time.Second

// Recommender is the ranking engine the handlers serve.
// *recommend.Recommender and *recommend.Live satisfy it.
type Recommender interface {
	GetRecommendations(ctx context.Context, req recommend.Request, n int) (recommend.Result, error)
	Config() *recommend.Config
	Catalog() recommend.Datasets
}

// Pinger reports whether a backing store is reachable.
// *database.DB satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response writers
//   - handlers_health.go: liveness and readiness probes
//   - handlers_recommend.go: ranking and catalog endpoints
type Handler struct {
	recommender    Recommender
	db             Pinger
	requestTimeout time.Duration
	version        string
	startTime      time.Time
}

// NewHandler creates a new API handler.
//
// db may be nil, in which case readiness depends only on the catalog.
//
//	handler := api.NewHandler(recommender, db, cfg)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg))
func NewHandler(rec Recommender, db Pinger, cfg *config.Config) *Handler {
	timeout := defaultRequestTimeout
	if cfg != nil && cfg.Server.Timeout > 0 {
		timeout = cfg.Server.Timeout
	}
	return &Handler{
		recommender:    rec,
		db:             db,
		requestTimeout: timeout,
		startTime:      time.Now(),
	}
}

// SetVersion sets the build version reported by health endpoints.
func (h *Handler) SetVersion(version string) {
	h.version = version
}
