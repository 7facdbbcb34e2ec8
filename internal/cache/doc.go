// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package cache provides a generic LRU cache with TTL expiry.
//
// The recommender keeps ranked results here, keyed by the canonical request
// and result size, and clears it whenever a new catalog is installed.
//
//	results := cache.NewLRU[recommend.Result](1024, 5*time.Minute)
//	results.Add(key, result)
//	if r, ok := results.Get(key); ok {
//	    return r
//	}
package cache
