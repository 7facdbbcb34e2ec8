// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package frame

import (
	"maps"
	"math"
	"slices"
	"sort"
)

// Row is a single record keyed by column name.
type Row map[string]any

// Clone returns a shallow copy of the row. Values are scalars, so the copy is
// independent of the original.
func (r Row) Clone() Row {
	return maps.Clone(r)
}

// Table is an ordered collection of rows sharing a column set.
type Table struct {
	columns []string
	rows    []Row
}

// New creates a table with the given columns and rows.
// Rows are copied; keys not listed in columns are kept but not reported by Columns.
func New(columns []string, rows ...Row) *Table {
	t := &Table{
		columns: slices.Clone(columns),
		rows:    make([]Row, 0, len(rows)),
	}
	for _, r := range rows {
		t.rows = append(t.rows, r.Clone())
	}
	return t
}

// Empty creates a table with columns and no rows.
func Empty(columns ...string) *Table {
	return New(columns)
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.columns)
}

// HasColumn reports whether the table declares the column.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	return slices.Contains(t.columns, name)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// Row returns a copy of row i.
func (t *Table) Row(i int) Row {
	return t.rows[i].Clone()
}

// Rows returns copies of all rows in order.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Clone()
	}
	return out
}

// Column returns the values of one column in row order. Missing cells are nil.
func (t *Table) Column(name string) []any {
	out := make([]any, t.Len())
	for i, r := range t.rows {
		out[i] = r[name]
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	if t == nil {
		return Empty()
	}
	return New(t.columns, t.rows...)
}

// Append returns a new table with row added at the end. Columns present in the
// row but unknown to the table are added to the column list.
func (t *Table) Append(row Row) *Table {
	out := t.Clone()
	for _, k := range sortedKeys(row) {
		if !slices.Contains(out.columns, k) {
			out.columns = append(out.columns, k)
		}
	}
	out.rows = append(out.rows, row.Clone())
	return out
}

// Filter returns the rows for which keep returns true, in order.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := &Table{columns: t.Columns()}
	for _, r := range t.rows {
		if keep(r) {
			out.rows = append(out.rows, r.Clone())
		}
	}
	return out
}

// KeyFunc extracts a sort key from a row. ok=false marks the key as missing.
type KeyFunc func(Row) (key float64, ok bool)

// FloatKey returns a KeyFunc reading a numeric column.
func FloatKey(column string) KeyFunc {
	return func(r Row) (float64, bool) {
		return Float(r[column])
	}
}

// SortDesc returns the rows ordered by key, highest first. The sort is stable,
// so ties keep their original order. Rows with a missing key sort last.
func (t *Table) SortDesc(key KeyFunc) *Table {
	type keyed struct {
		row Row
		key float64
		ok  bool
	}
	items := make([]keyed, len(t.rows))
	for i, r := range t.rows {
		k, ok := key(r)
		items[i] = keyed{row: r, key: k, ok: ok}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ok != items[j].ok {
			return items[i].ok
		}
		return items[i].key > items[j].key
	})

	out := &Table{columns: t.Columns(), rows: make([]Row, len(items))}
	for i, it := range items {
		out.rows[i] = it.row.Clone()
	}
	return out
}

// Head returns the first n rows. A non-positive n yields an empty table.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > t.Len() {
		n = t.Len()
	}
	return New(t.columns, t.rows[:n]...)
}

// DropMissing returns the rows whose value in column is present.
// If the column is not declared every row is dropped.
func (t *Table) DropMissing(column string) *Table {
	return t.Filter(func(r Row) bool {
		return !IsMissing(r[column])
	})
}

// DropDuplicates keeps the first row for each distinct value of column.
// Rows with a missing value are kept.
func (t *Table) DropDuplicates(column string) *Table {
	seen := make(map[string]struct{}, t.Len())
	return t.Filter(func(r Row) bool {
		v, ok := String(r[column])
		if !ok {
			return true
		}
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
		return true
	})
}

// Rename returns a table with column oldName renamed to newName.
// Renaming onto an existing column replaces it.
func (t *Table) Rename(oldName, newName string) *Table {
	if oldName == newName || !t.HasColumn(oldName) {
		return t.Clone()
	}

	out := &Table{rows: make([]Row, len(t.rows))}
	for _, c := range t.columns {
		switch c {
		case newName:
			continue
		case oldName:
			out.columns = append(out.columns, newName)
		default:
			out.columns = append(out.columns, c)
		}
	}
	for i, r := range t.rows {
		nr := r.Clone()
		delete(nr, newName)
		if v, ok := nr[oldName]; ok {
			nr[newName] = v
			delete(nr, oldName)
		}
		out.rows[i] = nr
	}
	return out
}

// WithColumn returns a table with column set to compute(row) on every row.
// The column is appended when new, otherwise its values are replaced.
func (t *Table) WithColumn(name string, compute func(Row) any) *Table {
	out := t.Clone()
	if !slices.Contains(out.columns, name) {
		out.columns = append(out.columns, name)
	}
	for _, r := range out.rows {
		r[name] = compute(r)
	}
	return out
}

// MaxFloat returns the largest numeric value in column and whether one exists.
func (t *Table) MaxFloat(column string) (float64, bool) {
	best, found := math.Inf(-1), false
	for _, r := range t.rows {
		if v, ok := Float(r[column]); ok && v > best {
			best, found = v, true
		}
	}
	return best, found
}

func sortedKeys(r Row) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
