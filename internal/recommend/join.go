// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tomtom215/shelfwise/internal/frame"
)

// JoinKey pairs an identifier column of an aggregated count table (Left) with
// an identifier column of a book table (Right).
type JoinKey struct {
	Left  string
	Right string
}

func (k JoinKey) String() string {
	return k.Left + "->" + k.Right
}

// DefaultJoinKeys is the join strategy table, tried in order. Interaction logs
// reference the primary edition, so best_book_id is preferred when present.
var DefaultJoinKeys = []JoinKey{
	{Left: ColBookID, Right: ColBestBookID},
	{Left: ColBookID, Right: ColBookID},
}

// JoinKind selects which side of a join keeps unmatched rows.
type JoinKind int

const (
	// InnerJoin keeps only books with at least one count row.
	InnerJoin JoinKind = iota

	// BooksLeftJoin keeps every book; unmatched count columns are zero.
	BooksLeftJoin
)

// ResolveJoinKey returns the first strategy whose columns exist on both tables.
func ResolveJoinKey(counts, books *frame.Table, keys []JoinKey) (JoinKey, error) {
	for _, k := range keys {
		if counts.HasColumn(k.Left) && books.HasColumn(k.Right) {
			return k, nil
		}
	}
	tried := make([]string, len(keys))
	for i, k := range keys {
		tried[i] = k.String()
	}
	return JoinKey{}, fmt.Errorf("%w (tried %s)", ErrMissingJoinKey, strings.Join(tried, ", "))
}

// Join merges an aggregated count table with a book table. Identifiers on both
// sides are compared as canonical strings, so 123 and 123.0 match. Book
// attributes take precedence when both tables carry a column.
func Join(counts, books *frame.Table, keys []JoinKey, kind JoinKind) (*frame.Table, error) {
	key, err := ResolveJoinKey(counts, books, keys)
	if err != nil {
		return nil, err
	}
	if kind == BooksLeftJoin {
		return leftJoinBooks(counts, books, key), nil
	}
	return innerJoin(counts, books, key), nil
}

// innerJoin emits one row per matching (count, book) pair in count order,
// then book order.
func innerJoin(counts, books *frame.Table, key JoinKey) *frame.Table {
	index := make(map[string][]frame.Row)
	for _, b := range books.Rows() {
		if id, ok := frame.String(b[key.Right]); ok {
			index[id] = append(index[id], b)
		}
	}

	rows := make([]frame.Row, 0, counts.Len())
	for _, c := range counts.Rows() {
		id, ok := frame.String(c[key.Left])
		if !ok {
			continue
		}
		for _, b := range index[id] {
			merged := c.Clone()
			for col, v := range b {
				merged[col] = v
			}
			rows = append(rows, merged)
		}
	}
	return frame.New(mergedColumns(counts.Columns(), books.Columns()), rows...)
}

// leftJoinBooks emits one row per book in book order, carrying the count
// columns of its match or zero.
func leftJoinBooks(counts, books *frame.Table, key JoinKey) *frame.Table {
	var countCols []string
	for _, col := range counts.Columns() {
		if col != key.Left && !books.HasColumn(col) {
			countCols = append(countCols, col)
		}
	}

	index := make(map[string]frame.Row, counts.Len())
	for _, c := range counts.Rows() {
		if id, ok := frame.String(c[key.Left]); ok {
			if _, dup := index[id]; !dup {
				index[id] = c
			}
		}
	}

	rows := make([]frame.Row, 0, books.Len())
	for _, b := range books.Rows() {
		var match frame.Row
		if id, ok := frame.String(b[key.Right]); ok {
			match = index[id]
		}
		for _, col := range countCols {
			if v, ok := match[col]; ok {
				b[col] = v
			} else {
				b[col] = int64(0)
			}
		}
		rows = append(rows, b)
	}
	return frame.New(mergedColumns(books.Columns(), countCols), rows...)
}

func mergedColumns(first, second []string) []string {
	out := slices.Clone(first)
	for _, c := range second {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

// ReconcileContributor exposes the contributor under the canonical "name"
// column. When only "authors" exists it is renamed. When "name" exists it is
// kept as is and its gaps stay missing.
func ReconcileContributor(t *frame.Table) *frame.Table {
	if t.HasColumn(ColAuthors) && !t.HasColumn(ColName) {
		return t.Rename(ColAuthors, ColName)
	}
	return t
}
