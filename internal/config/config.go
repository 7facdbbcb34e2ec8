// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// config file, and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(&cfg.Data)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// DataConfig holds dataset location and DuckDB settings.
type DataConfig struct {
	// Dir is scanned for parquet, csv, and json datasets.
	Dir        string `koanf:"dir"`
	DuckDBPath string `koanf:"duckdb_path"`
	MaxMemory  string `koanf:"max_memory"`
	Threads    int    `koanf:"threads"` // Number of DuckDB threads (0 = use NumCPU)

	// ReloadInterval re-reads Dir on a schedule so new snapshots are
	// picked up without a restart. Zero disables it.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: Include caller information (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// RecommendConfig holds ranking defaults and limits.
//
// Environment Variables:
//   - RECOMMEND_DEFAULT_N: Books per request when n is omitted (default: 10)
//   - RECOMMEND_MAX_N: Upper bound on n (default: 100)
//   - RECOMMEND_REFERENCE_YEAR: Collection cutoff year for trending (default: 2017)
//   - RECOMMEND_TRENDING_YEARS: Publication window in years (default: 2)
//   - RECOMMEND_LAST_DAYS: Interaction window in days (default: 90)
//   - RECOMMEND_DATE_COLUMN: Interaction timestamp column (default: date_added)
//   - RECOMMEND_WEIGHT_POPULARITY: w1 for weighted scoring (default: 0.2)
//   - RECOMMEND_WEIGHT_RATING: w2 for weighted scoring (default: 0.8)
//   - RECOMMEND_GENRE_METHOD: Default genre method (default: weighted)
//   - RECOMMEND_CACHE_SIZE: Cached ranked results, 0 disables (default: 1024)
//   - RECOMMEND_CACHE_TTL: Lifetime of a cached result (default: 5m)
type RecommendConfig struct {
	DefaultN         int     `koanf:"default_n"`
	MaxN             int     `koanf:"max_n"`
	ReferenceYear    int     `koanf:"reference_year"`
	TrendingYears    int     `koanf:"trending_years"`
	LastDays         int     `koanf:"last_days"`
	DateColumn       string  `koanf:"date_column"`
	WeightPopularity float64 `koanf:"weight_popularity"`
	WeightRating     float64 `koanf:"weight_rating"`
	GenreMethod      string  `koanf:"genre_method"`

	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
}

// Load reads configuration with the following precedence (highest to lowest):
//  1. Environment variables
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Built-in defaults
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
