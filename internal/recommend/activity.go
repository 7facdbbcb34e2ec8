// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"github.com/tomtom215/shelfwise/internal/frame"
)

// Activity is a shelving event recorded in one of the activity logs.
type Activity int

const (
	// ActivityStarted counts books users have started reading.
	ActivityStarted Activity = iota

	// ActivityAdded counts books users are actively reviewing.
	ActivityAdded

	// ActivityFinished counts books users read to the end.
	ActivityFinished
)

// String returns the activity name.
func (a Activity) String() string {
	switch a {
	case ActivityStarted:
		return "started"
	case ActivityAdded:
		return "added"
	case ActivityFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// CountColumn returns the output column holding the per-book count.
func (a Activity) CountColumn() string {
	switch a {
	case ActivityAdded:
		return ColReviewCount
	case ActivityFinished:
		return ColFinishedCount
	default:
		return ColStartedCount
	}
}

// Dataset returns the logical name of the activity's log.
func (a Activity) Dataset() string {
	switch a {
	case ActivityAdded:
		return DatasetAdded
	case ActivityFinished:
		return DatasetFinished
	default:
		return DatasetStarted
	}
}

// ActivityCounts ranks books by how often they appear in an activity log.
// Every book survives the join, so books nobody touched rank last with a
// count of zero. There is no time window.
func ActivityCounts(log, books *frame.Table, activity Activity, n int) (*frame.Table, error) {
	if err := requireColumns(log, activity.Dataset(), ColBookID); err != nil {
		return nil, err
	}
	column := activity.CountColumn()
	counts := CountBy(log, ColBookID, column)

	merged, err := Join(counts, books, DefaultJoinKeys, BooksLeftJoin)
	if err != nil {
		return nil, err
	}
	return finalize(merged, frame.FloatKey(column), n), nil
}

// WhatOthersAreReading ranks books by how many users started them.
func WhatOthersAreReading(started, books *frame.Table, n int) (*frame.Table, error) {
	return ActivityCounts(started, books, ActivityStarted, n)
}

// BuzzingBooks ranks books by how many reviews were added for them.
func BuzzingBooks(added, books *frame.Table, n int) (*frame.Table, error) {
	return ActivityCounts(added, books, ActivityAdded, n)
}

// PageTurners ranks books by how many users finished them.
func PageTurners(finished, books *frame.Table, n int) (*frame.Table, error) {
	return ActivityCounts(finished, books, ActivityFinished, n)
}
