// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"fmt"

	"github.com/tomtom215/shelfwise/internal/frame"
)

// InteractionOptions parameterizes trending-by-interactions.
type InteractionOptions struct {
	// DateColumn is the timestamp column of the interaction log.
	DateColumn string

	// LastDays is the trailing window, counted back from the latest
	// timestamp in the log.
	LastDays int

	// JoinKeys overrides DefaultJoinKeys when non-empty.
	JoinKeys []JoinKey
}

// DefaultInteractionOptions returns a 90-day window over date_added.
func DefaultInteractionOptions() InteractionOptions {
	return InteractionOptions{DateColumn: "date_added", LastDays: 90}
}

// EmptyTrendingTable is returned when an interaction log has no usable
// timestamps at all.
func EmptyTrendingTable() *frame.Table {
	return frame.Empty(ColTitle, ColName, ColRecentInteractions)
}

// NoTrendingMessage is the diagnostic returned when the window is empty.
func NoTrendingMessage(days int) string {
	return fmt.Sprintf("Sorry! No trending books within the last %d days.", days)
}

// TrendingByInteractions ranks books by the number of interactions inside a
// trailing window that ends at the log's latest timestamp. The dataset is a
// static snapshot, so "now" is derived from the data rather than the clock.
//
// Two empty outcomes are distinguished: a log without parseable timestamps
// yields an empty table, while an empty window yields a diagnostic.
func TrendingByInteractions(log, books *frame.Table, opts InteractionOptions, n int) (Result, error) {
	if err := requireColumns(log, "interaction log", ColBookID, opts.DateColumn); err != nil {
		return Result{}, err
	}
	keys := opts.JoinKeys
	if len(keys) == 0 {
		keys = DefaultJoinKeys
	}

	parsed, dropped := ParseTimestamps(log, opts.DateColumn)
	latest, ok := LatestTimestamp(parsed, opts.DateColumn)
	if !ok {
		result := Ranked(EmptyTrendingTable())
		result.Dropped = dropped
		return result, nil
	}

	recent := Since(parsed, opts.DateColumn, WindowCutoff(latest, opts.LastDays))
	if recent.IsEmpty() {
		result := Diagnosed(NoTrendingMessage(opts.LastDays))
		result.Dropped = dropped
		return result, nil
	}

	counts := CountBy(recent, ColBookID, ColRecentInteractions)
	merged, err := Join(counts, books, keys, InnerJoin)
	if err != nil {
		return Result{}, err
	}

	result := Ranked(finalize(merged, frame.FloatKey(ColRecentInteractions), n))
	result.Dropped = dropped
	return result, nil
}

func requireColumns(t *frame.Table, what string, columns ...string) error {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return fmt.Errorf("%w: %s has no %q column", ErrMissingColumn, what, c)
		}
	}
	return nil
}
