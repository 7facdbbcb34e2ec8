// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/tomtom215/shelfwise/internal/frame"
)

// CountBy groups log by key and counts rows per group. The result has two
// columns: key (canonical string identifiers) and countColumn (int64).
// Rows with a missing key are ignored. Groups are ordered by key ascending,
// numerically when every key is numeric.
func CountBy(log *frame.Table, key, countColumn string) *frame.Table {
	counts := make(map[string]int64)
	for _, r := range log.Rows() {
		id, ok := frame.String(r[key])
		if !ok {
			continue
		}
		counts[id]++
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sortIdentifiers(ids)

	rows := make([]frame.Row, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, frame.Row{key: id, countColumn: counts[id]})
	}
	return frame.New([]string{key, countColumn}, rows...)
}

func sortIdentifiers(ids []string) {
	numeric := make(map[string]float64, len(ids))
	for _, id := range ids {
		f, err := strconv.ParseFloat(id, 64)
		if err != nil {
			slices.Sort(ids)
			return
		}
		numeric[id] = f
	}
	slices.SortFunc(ids, func(a, b string) int {
		return cmp.Compare(numeric[a], numeric[b])
	})
}
