// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfwise/internal/cache"
	"github.com/tomtom215/shelfwise/internal/metrics"
)

// Live serves rankings from the most recently installed catalog.
// Replace swaps the catalog atomically; requests already running finish on
// the catalog they started with.
//
// Ranked and diagnostic results are cached per request and size until the
// next Replace. Errors are never cached.
type Live struct {
	current atomic.Pointer[Recommender]
	config  *Config
	logger  zerolog.Logger

	// mu orders Replace against cache writes so a result computed on an
	// old catalog is not stored after the cache was cleared.
	mu      sync.RWMutex
	results *cache.LRU[Result]
}

// NewLive creates a Live recommender over an initial catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLive(catalog Datasets, cfg *Config, logger zerolog.Logger) (*Live, error) {
	r, err := NewRecommender(catalog, cfg, logger)
	if err != nil {
		return nil, err
	}
	l := &Live{config: r.config.Clone(), logger: logger}
	if l.config.Cache.Size > 0 {
		l.results = cache.NewLRU[Result](l.config.Cache.Size, l.config.Cache.TTL)
	}
	l.current.Store(r)
	return l, nil
}

// Replace installs a new catalog under the same configuration and drops
// every cached result.
func (l *Live) Replace(catalog Datasets) error {
	r, err := NewRecommender(catalog, l.config, l.logger)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.current.Store(r)
	if l.results != nil {
		l.results.Clear()
	}
	return nil
}

// Current returns the recommender serving new requests.
func (l *Live) Current() *Recommender {
	return l.current.Load()
}

// GetRecommendations ranks through the current recommender, answering
// repeated requests from the cache.
func (l *Live) GetRecommendations(ctx context.Context, req Request, n int) (Result, error) {
	if l.results == nil || req == nil || ctx.Err() != nil {
		return l.Current().GetRecommendations(ctx, req, n)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	r := l.Current()
	key := cacheKey(req, r.config.ClampN(n))
	if result, ok := l.results.Get(key); ok {
		metrics.RecordCacheLookup(true)
		return result, nil
	}
	metrics.RecordCacheLookup(false)

	result, err := r.GetRecommendations(ctx, req, n)
	if err != nil {
		return result, err
	}
	l.results.Add(key, result)
	return result, nil
}

// Config returns a copy of the recommender configuration.
func (l *Live) Config() *Config {
	return l.config.Clone()
}

// Catalog returns the datasets currently being served.
func (l *Live) Catalog() Datasets {
	return l.Current().Catalog()
}

// Stats returns counters since the last Replace.
func (l *Live) Stats() Stats {
	return l.Current().Stats()
}

// CacheStats reports result cache counters. ok is false when caching is off.
func (l *Live) CacheStats() (stats cache.Stats, ok bool) {
	if l.results == nil {
		return cache.Stats{}, false
	}
	return l.results.Stats(), true
}

// cacheKey identifies a request by its concrete type, field values and
// resolved size. The Bayesian prior is keyed by value, not by pointer.
func cacheKey(req Request, n int) string {
	switch q := req.(type) {
	case BayesianRequest:
		return fmt.Sprintf("%T{C:%s}|%d", q, priorKey(q.C), n)
	case GenreRequest:
		return fmt.Sprintf("%T{%s|%s|y:%s|ref:%d|d:%s|col:%s|w:%s,%s|C:%s|log:%s}|%d",
			q, q.Genre, q.Method, optKey(q.Years), q.ReferenceYear, optKey(q.Days), q.DateColumn,
			optKey(q.W1), optKey(q.W2), priorKey(q.C), q.Interactions, n)
	default:
		return fmt.Sprintf("%T%+v|%d", req, req, n)
	}
}

func optKey[T any](p *T) string {
	if p == nil {
		return "default"
	}
	return fmt.Sprint(*p)
}

func priorKey(c *float64) string {
	if c == nil {
		return "mean"
	}
	return strconv.FormatFloat(*c, 'g', -1, 64)
}
