// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommender.
type Config struct {
	// Defaults are applied when a request omits a parameter.
	Defaults DefaultsConfig `json:"defaults"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Cache sizes the ranked result cache used by Live.
	Cache CacheConfig `json:"cache"`
}

// DefaultsConfig holds per-parameter defaults for ranking requests.
type DefaultsConfig struct {
	// N is the number of books returned when the caller does not specify one.
	N int `json:"n"`

	// ReferenceYear is the collection cutoff year used by trending-by-recency.
	// The Goodreads snapshot ends in 2017.
	ReferenceYear int `json:"reference_year"`

	// TrendingYears is the publication window for trending-by-recency.
	TrendingYears int `json:"trending_years"`

	// LastDays is the trailing interaction window for trending-by-interactions.
	LastDays int `json:"last_days"`

	// DateColumn is the timestamp column of interaction logs.
	DateColumn string `json:"date_column"`

	// WeightPopularity (w1) and WeightRating (w2) drive weighted scoring.
	WeightPopularity float64 `json:"weight_popularity"`
	WeightRating     float64 `json:"weight_rating"`

	// GenreMethod is the ranking family used for genre requests without a method.
	GenreMethod Method `json:"genre_method"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// MaxN caps the number of books a single request may return.
	MaxN int `json:"max_n"`
}

// CacheConfig sizes the ranked result cache. Size 0 disables it and TTL 0
// falls back to cache.DefaultTTL.
type CacheConfig struct {
	Size int           `json:"size"`
	TTL  time.Duration `json:"ttl"`
}

// DefaultConfig returns the default recommender configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			N:                10,
			ReferenceYear:    2017,
			TrendingYears:    2,
			LastDays:         90,
			DateColumn:       "date_added",
			WeightPopularity: 0.2,
			WeightRating:     0.8,
			GenreMethod:      MethodWeighted,
		},
		Limits: LimitsConfig{
			MaxN: 100,
		},
		Cache: CacheConfig{
			Size: 1024,
			TTL:  5 * time.Minute,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Defaults.N < 1 {
		return fmt.Errorf("defaults.n must be positive, got %d", c.Defaults.N)
	}
	if c.Limits.MaxN < c.Defaults.N {
		return fmt.Errorf("limits.max_n must be >= defaults.n, got %d < %d", c.Limits.MaxN, c.Defaults.N)
	}
	if c.Defaults.TrendingYears < 0 {
		return fmt.Errorf("defaults.trending_years must be non-negative, got %d", c.Defaults.TrendingYears)
	}
	if c.Defaults.LastDays < 0 {
		return fmt.Errorf("defaults.last_days must be non-negative, got %d", c.Defaults.LastDays)
	}
	if c.Defaults.DateColumn == "" {
		return fmt.Errorf("defaults.date_column must not be empty")
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must be non-negative, got %d", c.Cache.Size)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be non-negative, got %v", c.Cache.TTL)
	}
	if !c.Defaults.GenreMethod.Valid() {
		return fmt.Errorf("defaults.genre_method %q: %w", c.Defaults.GenreMethod, ErrUnknownMethod)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - nested structs contain only value types
	return &Config{
		Defaults: c.Defaults,
		Limits:   c.Limits,
		Cache:    c.Cache,
	}
}

// ClampN resolves a requested result size: non-positive values fall back to
// the default and values above the limit are capped.
func (c *Config) ClampN(n int) int {
	switch {
	case n < 1:
		return c.Defaults.N
	case n > c.Limits.MaxN:
		return c.Limits.MaxN
	default:
		return n
	}
}
