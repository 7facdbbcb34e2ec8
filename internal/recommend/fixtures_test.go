// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"testing"
	"time"

	"github.com/tomtom215/shelfwise/internal/frame"
)

var bookColumns = []string{
	ColBookID, ColBestBookID, ColTitle, ColAuthors,
	ColRatingsCount, ColAverageRating, ColPublicationYear,
}

// book builds a book row whose best_book_id is id and whose edition
// book_id is id+1000, so joins prove which key they used.
func book(id int64, title string, count int64, rating float64, year int64) frame.Row {
	return frame.Row{
		ColBookID:          id + 1000,
		ColBestBookID:      id,
		ColTitle:           title,
		ColAuthors:         "Author of " + title,
		ColRatingsCount:    count,
		ColAverageRating:   rating,
		ColPublicationYear: year,
	}
}

func books(rows ...frame.Row) *frame.Table {
	return frame.New(bookColumns, rows...)
}

func catalogBooks() *frame.Table {
	return books(
		book(1, "Dune", 500, 4.2, 1965),
		book(2, "Emma", 300, 3.9, 1815),
		book(3, "Circe", 200, 4.3, 2016),
		book(4, "Origin", 400, 3.7, 2017),
		book(5, "Beloved", 0, 4.8, 2015),
	)
}

var latestInteraction = time.Date(2017, 10, 1, 12, 0, 0, 0, time.UTC)

var logColumns = []string{ColBookID, "user_id", "date_added"}

// interaction builds a log row daysAgo days before latestInteraction.
func interaction(bookID any, daysAgo int) frame.Row {
	return frame.Row{
		ColBookID:    bookID,
		"user_id":    "u1",
		"date_added": latestInteraction.AddDate(0, 0, -daysAgo).Format(time.RFC3339),
	}
}

func interactionLog(rows ...frame.Row) *frame.Table {
	return frame.New(logColumns, rows...)
}

func titlesOf(t *frame.Table) []string {
	out := make([]string, 0, t.Len())
	for _, v := range t.Column(ColTitle) {
		s, _ := frame.String(v)
		out = append(out, s)
	}
	return out
}

func assertTitles(t *testing.T, got *frame.Table, want ...string) {
	t.Helper()
	titles := titlesOf(got)
	if len(titles) != len(want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("titles = %v, want %v", titles, want)
		}
	}
}

func assertNonIncreasing(t *testing.T, got *frame.Table, column string) {
	t.Helper()
	values := got.Column(column)
	for i := 1; i < len(values); i++ {
		prev, okPrev := frame.Float(values[i-1])
		cur, okCur := frame.Float(values[i])
		if !okPrev || !okCur {
			t.Fatalf("row %d: %s is not numeric (%v, %v)", i, column, values[i-1], values[i])
		}
		if cur > prev {
			t.Fatalf("%s increases at row %d: %v > %v", column, i, cur, prev)
		}
	}
}

func assertUniqueTitles(t *testing.T, got *frame.Table) {
	t.Helper()
	seen := make(map[string]bool)
	for _, title := range titlesOf(got) {
		if seen[title] {
			t.Fatalf("duplicate title %q in %v", title, titlesOf(got))
		}
		seen[title] = true
	}
}
