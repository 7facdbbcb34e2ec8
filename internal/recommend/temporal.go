// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"time"

	"github.com/tomtom215/shelfwise/internal/frame"
)

// YearCutoff returns the earliest publication year inside a trailing window of
// years ending at referenceYear.
func YearCutoff(referenceYear, years int) int {
	return referenceYear - years
}

// WindowCutoff returns the inclusive lower bound of a trailing window of days
// ending at latest. Timestamps are UTC, so a day is always 24h.
func WindowCutoff(latest time.Time, days int) time.Time {
	return latest.AddDate(0, 0, -days)
}

// ParseTimestamps returns a copy of log whose column holds parsed UTC
// timestamps. Rows whose timestamp cannot be parsed are dropped and counted.
func ParseTimestamps(log *frame.Table, column string) (parsed *frame.Table, dropped int) {
	parsed = log.
		WithColumn(column, func(r frame.Row) any {
			ts, ok := frame.Time(r[column])
			if !ok {
				return nil
			}
			return ts
		}).
		DropMissing(column)
	return parsed, log.Len() - parsed.Len()
}

// LatestTimestamp returns the maximum parsed timestamp in column.
func LatestTimestamp(log *frame.Table, column string) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, r := range log.Rows() {
		ts, ok := frame.Time(r[column])
		if !ok {
			continue
		}
		if !found || ts.After(latest) {
			latest, found = ts, true
		}
	}
	return latest, found
}

// Since returns the rows whose timestamp is at or after cutoff.
func Since(log *frame.Table, column string, cutoff time.Time) *frame.Table {
	return log.Filter(func(r frame.Row) bool {
		ts, ok := frame.Time(r[column])
		return ok && !ts.Before(cutoff)
	})
}
