// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package recommend implements non-personalized book rankings over a static
// Goodreads-style catalog.
//
// # Rankings
//
// Every ranking takes its input tables explicitly and returns a new table
// ordered by its score, with untitled books dropped and duplicate titles
// collapsed onto their best-ranked row:
//
//   - Popular: ratings_count
//   - Trending: ratings_count among books published in a trailing window of
//     years ending at a reference year (2017 by default)
//   - Weighted: w1*norm_popularity + w2*norm_rating
//   - Bayesian: rating shrunk toward the count-weighted global mean
//   - TrendingByInteractions: review count in a trailing window of days that
//     ends at the newest timestamp in the log
//   - WhatOthersAreReading, BuzzingBooks, PageTurners: activity log counts
//
// # Joins
//
// Interaction logs and book tables do not always share an identifier column.
// Joins walk a strategy table (DefaultJoinKeys) and use the first pair of
// columns present on both sides, comparing identifiers as canonical strings.
//
// # Dispatch
//
// Recommender.GetRecommendations routes a typed Request to a ranking. Wire
// input is converted with RequestSpec.Build, which validates it first:
//
//	req, n, err := recommend.RequestSpec{Type: "genre", Genre: "fantasy"}.Build(cfg)
//	if err != nil {
//	    return err
//	}
//	result, err := recommender.GetRecommendations(ctx, req, n)
//	if result.IsDiagnostic() {
//	    fmt.Println(result.Diagnostic) // e.g. an unknown genre
//	}
//
// # Errors
//
// Missing join keys, missing interaction logs, and unknown request types or
// methods are errors (see ErrMissingJoinKey and friends). An unknown genre or
// an empty interaction window is not an error: the Result carries a
// diagnostic message instead of a table.
//
// # Thread Safety
//
// Rankings never modify their inputs, so a Recommender can serve concurrent
// requests over the same loaded datasets without locking.
//
// # Live Catalog
//
// Live wraps a Recommender so the catalog can be swapped while serving.
// Replace builds a new Recommender and installs it atomically. Results are
// cached per request until the next Replace (Config.Cache).
package recommend
