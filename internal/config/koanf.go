// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/shelfwise/config.yaml",
	"/etc/shelfwise/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:        "./Data/MainData",
			DuckDBPath: ":memory:",
			MaxMemory:  "1GB",
			Threads:    0, // 0 = use runtime.NumCPU()
		},
		Server: ServerConfig{
			Port:        8417,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: RecommendConfig{
			DefaultN:         10,
			MaxN:             100,
			ReferenceYear:    2017, // Goodreads snapshot cutoff
			TrendingYears:    2,
			LastDays:         90,
			DateColumn:       "date_added",
			WeightPopularity: 0.2,
			WeightRating:     0.8,
			GenreMethod:      "weighted",
			CacheSize:        1024,
			CacheTTL:         5 * time.Minute,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// Only mapped variables are applied; everything else is ignored.
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Data
	"data_dir":             "data.dir",
	"duckdb_path":          "data.duckdb_path",
	"duckdb_max_memory":    "data.max_memory",
	"duckdb_threads":       "data.threads",
	"data_reload_interval": "data.reload_interval",

	// Server
	"http_host":    "server.host",
	"http_port":    "server.port",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Recommendation defaults
	"recommend_default_n":         "recommend.default_n",
	"recommend_max_n":             "recommend.max_n",
	"recommend_reference_year":    "recommend.reference_year",
	"recommend_trending_years":    "recommend.trending_years",
	"recommend_last_days":         "recommend.last_days",
	"recommend_date_column":       "recommend.date_column",
	"recommend_weight_popularity": "recommend.weight_popularity",
	"recommend_weight_rating":     "recommend.weight_rating",
	"recommend_genre_method":      "recommend.genre_method",
	"recommend_cache_size":        "recommend.cache_size",
	"recommend_cache_ttl":         "recommend.cache_ttl",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped by the env provider.
//
// Examples:
//   - DATA_DIR -> data.dir
//   - HTTP_PORT -> server.port
//   - RECOMMEND_LAST_DAYS -> recommend.last_days
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// ConfigFilePath returns the config file LoadWithKoanf would read, or "" if none.
func ConfigFilePath() string {
	return findConfigFile()
}

// WatchConfigFile sets up a file watcher for hot-reload capability.
// The callback runs on the watcher goroutine; the caller guards any shared state.
// The returned stop function releases the watcher.
//
// Example usage:
//
//	stop, err := WatchConfigFile(path, func() {
//	    newCfg, err := LoadWithKoanf()
//	    if err != nil {
//	        return
//	    }
//	    logging.SetLevelString(newCfg.Logging.Level)
//	})
//	defer stop()
func WatchConfigFile(path string, callback func()) (func() error, error) {
	provider := file.Provider(path)

	err := provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
	if err != nil {
		return nil, err
	}
	return provider.Unwatch, nil
}
