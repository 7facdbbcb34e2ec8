// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package logging provides centralized zerolog-based structured logging for Shelfwise.
//
// JSON output is the default; console output is available for development.
// A global logger is configured once from config.LoggingConfig and shared by
// the loader, the recommender and the HTTP layer.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("datasets", n).Msg("Catalog loaded")
//	logging.Err(err).Msg("Catalog load failed")
//
// # Request Context
//
// The API middleware stores a request ID in the context; Ctx(ctx) returns a
// logger that stamps every line with it:
//
//	logging.Ctx(ctx).Info().Str("type", "popular").Msg("Recommendation served")
//
// # slog Bridge
//
// SlogHandler adapts zerolog to log/slog for the supervisor tree
// (sutureslog). Records are written through the same zerolog output.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
