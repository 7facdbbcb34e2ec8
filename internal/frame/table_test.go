// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package frame

import (
	"math"
	"reflect"
	"testing"
)

func sampleTable() *Table {
	return New([]string{"book_id", "title", "ratings_count"},
		Row{"book_id": int64(1), "title": "Dune", "ratings_count": int64(50)},
		Row{"book_id": int64(2), "title": "Emma", "ratings_count": int64(80)},
		Row{"book_id": int64(3), "title": nil, "ratings_count": int64(80)},
		Row{"book_id": int64(4), "title": "Dune", "ratings_count": nil},
	)
}

func titles(t *Table) []any {
	return t.Column("title")
}

func TestTable_SortDescIsStable(t *testing.T) {
	t.Parallel()

	sorted := sampleTable().SortDesc(FloatKey("ratings_count"))

	got := sorted.Column("book_id")
	want := []any{int64(2), int64(3), int64(1), int64(4)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortDesc order = %v, want %v", got, want)
	}
}

func TestTable_OperationsDoNotMutate(t *testing.T) {
	t.Parallel()

	orig := sampleTable()
	before := orig.Rows()

	_ = orig.SortDesc(FloatKey("ratings_count"))
	_ = orig.WithColumn("score", func(Row) any { return 1.0 })
	_ = orig.Rename("title", "name")
	_ = orig.DropMissing("title")
	_ = orig.Head(1)

	if !reflect.DeepEqual(orig.Rows(), before) {
		t.Error("operations mutated the receiver")
	}
	if orig.HasColumn("score") || orig.HasColumn("name") {
		t.Errorf("receiver columns changed: %v", orig.Columns())
	}
}

func TestTable_DropMissingAndDuplicates(t *testing.T) {
	t.Parallel()

	out := sampleTable().DropMissing("title").DropDuplicates("title")

	want := []any{"Dune", "Emma"}
	if got := titles(out); !reflect.DeepEqual(got, want) {
		t.Errorf("titles = %v, want %v", got, want)
	}
	if id := out.Row(0)["book_id"]; id != int64(1) {
		t.Errorf("first Dune kept should be book 1, got %v", id)
	}
}

func TestTable_Head(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want int
	}{
		{n: -1, want: 0},
		{n: 0, want: 0},
		{n: 2, want: 2},
		{n: 10, want: 4},
	}
	for _, tt := range tests {
		if got := sampleTable().Head(tt.n).Len(); got != tt.want {
			t.Errorf("Head(%d).Len() = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestTable_Rename(t *testing.T) {
	t.Parallel()

	tbl := New([]string{"authors", "title"}, Row{"authors": "Austen", "title": "Emma"})
	out := tbl.Rename("authors", "name")

	if out.HasColumn("authors") || !out.HasColumn("name") {
		t.Fatalf("columns after rename = %v", out.Columns())
	}
	if got := out.Row(0)["name"]; got != "Austen" {
		t.Errorf("name = %v, want Austen", got)
	}
	if _, ok := out.Row(0)["authors"]; ok {
		t.Error("old key still present in row")
	}
}

func TestTable_AppendAddsColumns(t *testing.T) {
	t.Parallel()

	out := Empty("title").Append(Row{"title": "Emma", "year": int64(1815)})

	if !out.HasColumn("year") {
		t.Errorf("columns = %v, want year added", out.Columns())
	}
	if out.Len() != 1 {
		t.Errorf("Len() = %d, want 1", out.Len())
	}
}

func TestTable_MaxFloat(t *testing.T) {
	t.Parallel()

	if got, ok := sampleTable().MaxFloat("ratings_count"); !ok || got != 80 {
		t.Errorf("MaxFloat = %v, %v; want 80, true", got, ok)
	}
	if _, ok := Empty("ratings_count").MaxFloat("ratings_count"); ok {
		t.Error("MaxFloat on empty table should report ok=false")
	}
	nan := New([]string{"x"}, Row{"x": math.NaN()})
	if _, ok := nan.MaxFloat("x"); ok {
		t.Error("MaxFloat should ignore NaN")
	}
}
