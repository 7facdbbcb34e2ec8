// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package config provides centralized configuration management for Shelfwise.

Configuration is layered with Koanf v2: built-in defaults first, then an
optional YAML file, then environment variables. The first existing file among
CONFIG_PATH, config.yaml, config.yml, /etc/shelfwise/config.yaml and
/etc/shelfwise/config.yml is used.

# Configuration Structure

  - DataConfig: dataset directory and DuckDB tuning
  - ServerConfig: HTTP listener settings
  - SecurityConfig: CORS origins and rate limiting
  - LoggingConfig: zerolog level, format and caller info
  - RecommendConfig: ranking defaults (n, trending windows, weights)

# Environment Variables

Data (DataConfig):
  - DATA_DIR: Directory holding the Goodreads extracts (default: ./Data/MainData)
  - DUCKDB_PATH: Database file path (default: :memory:)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - DUCKDB_THREADS: Thread count (default: CPU count)
  - DATA_RELOAD_INTERVAL: Catalog re-read period, 0 disables (default: 0)

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8417)
  - HTTP_TIMEOUT: Request timeout (default: 30s)
  - ENVIRONMENT: development, staging, production (default: development)

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Window length (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Recommendations (RecommendConfig):
  - RECOMMEND_DEFAULT_N, RECOMMEND_MAX_N
  - RECOMMEND_REFERENCE_YEAR, RECOMMEND_TRENDING_YEARS
  - RECOMMEND_LAST_DAYS, RECOMMEND_DATE_COLUMN
  - RECOMMEND_WEIGHT_POPULARITY, RECOMMEND_WEIGHT_RATING
  - RECOMMEND_GENRE_METHOD
  - RECOMMEND_CACHE_SIZE, RECOMMEND_CACHE_TTL

# Validation

Validate rejects out-of-range ports, rate limits, log levels and ranking
defaults. LoadWithKoanf calls it before returning.

# Thread Safety

Config is immutable after Load() and safe for concurrent read access.
WatchConfigFile callbacks run on the watcher goroutine. The stop function
it returns releases the underlying fsnotify watcher.
*/
package config
