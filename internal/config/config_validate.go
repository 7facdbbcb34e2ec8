// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateData validates dataset and DuckDB settings
func (c *Config) validateData() error {
	if strings.TrimSpace(c.Data.Dir) == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.Data.DuckDBPath == "" {
		return fmt.Errorf("DUCKDB_PATH must not be empty (use :memory: for an in-memory database)")
	}
	if c.Data.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative")
	}
	if c.Data.ReloadInterval < 0 {
		return fmt.Errorf("DATA_RELOAD_INTERVAL must be non-negative (0 disables reloading)")
	}
	return nil
}

// validateServer validates HTTP server settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// Rate limit bounds
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateSecurity validates CORS and rate limiting
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validGenreMethods mirrors the ranking families a genre request can use
var validGenreMethods = map[string]bool{
	"popular":               true,
	"trending":              true,
	"weighted":              true,
	"bayesian":              true,
	"trending_interactions": true,
}

// validateRecommend validates ranking defaults
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultN < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_N must be positive")
	}
	if r.MaxN < r.DefaultN {
		return fmt.Errorf("RECOMMEND_MAX_N must be >= RECOMMEND_DEFAULT_N (%d < %d)", r.MaxN, r.DefaultN)
	}
	if r.TrendingYears < 0 {
		return fmt.Errorf("RECOMMEND_TRENDING_YEARS must be non-negative")
	}
	if r.LastDays < 0 {
		return fmt.Errorf("RECOMMEND_LAST_DAYS must be non-negative")
	}
	if r.DateColumn == "" {
		return fmt.Errorf("RECOMMEND_DATE_COLUMN must not be empty")
	}
	if !validGenreMethods[r.GenreMethod] {
		return fmt.Errorf("RECOMMEND_GENRE_METHOD must be one of: popular, trending, weighted, bayesian, trending_interactions")
	}
	if r.CacheSize < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must be non-negative (0 disables the cache)")
	}
	if r.CacheTTL < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be non-negative")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// HasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
