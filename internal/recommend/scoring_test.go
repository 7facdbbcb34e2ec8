// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/shelfwise/internal/frame"
)

const epsilon = 1e-9

func TestPopular(t *testing.T) {
	t.Parallel()

	t.Run("orders by ratings_count and truncates", func(t *testing.T) {
		t.Parallel()
		got := Popular(catalogBooks(), 3)
		assertTitles(t, got, "Dune", "Origin", "Emma")
		assertNonIncreasing(t, got, ColRatingsCount)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		t.Parallel()
		tied := books(
			book(1, "First", 100, 4, 2000),
			book(2, "Second", 300, 4, 2000),
			book(3, "Third", 300, 4, 2000),
		)
		assertTitles(t, Popular(tied, 10), "Second", "Third", "First")
	})
}

func TestRankings_OutputBounded(t *testing.T) {
	t.Parallel()

	rankings := map[string]func(*frame.Table, int) *frame.Table{
		"popular": Popular,
		"trending": func(b *frame.Table, n int) *frame.Table {
			return Trending(b, DefaultTrendingOptions(), n)
		},
		"weighted": func(b *frame.Table, n int) *frame.Table {
			return Weighted(b, 0.2, 0.8, n)
		},
		"bayesian": func(b *frame.Table, n int) *frame.Table {
			return Bayesian(b, nil, n)
		},
	}
	keys := map[string]string{
		"popular":  ColRatingsCount,
		"trending": ColRatingsCount,
		"weighted": ColWeightedScore,
		"bayesian": ColBayesianScore,
	}

	for name, rank := range rankings {
		for _, n := range []int{0, 1, 3, 5, 50} {
			got := rank(catalogBooks(), n)
			if got.Len() > n || got.Len() > catalogBooks().Len() {
				t.Errorf("%s n=%d: %d rows", name, n, got.Len())
			}
			assertNonIncreasing(t, got, keys[name])
		}
	}
}

func TestTrending(t *testing.T) {
	t.Parallel()

	t.Run("default window", func(t *testing.T) {
		t.Parallel()
		got := Trending(catalogBooks(), DefaultTrendingOptions(), 10)
		assertTitles(t, got, "Origin", "Circe", "Beloved")
		for _, y := range got.Column(ColPublicationYear) {
			if year, _ := frame.Int(y); year < 2015 {
				t.Errorf("publication_year %d before window", year)
			}
		}
	})

	t.Run("custom reference year", func(t *testing.T) {
		t.Parallel()
		got := Trending(catalogBooks(), TrendingOptions{Years: 0, ReferenceYear: 2017}, 10)
		assertTitles(t, got, "Origin")
	})

	t.Run("missing year excluded", func(t *testing.T) {
		t.Parallel()
		row := book(9, "Undated", 9999, 4, 0)
		row[ColPublicationYear] = nil
		got := Trending(books(row, book(1, "Recent", 1, 4, 2017)), DefaultTrendingOptions(), 10)
		assertTitles(t, got, "Recent")
	})
}

func TestWeighted(t *testing.T) {
	t.Parallel()

	t.Run("normalized components stay in range", func(t *testing.T) {
		t.Parallel()
		got := Weighted(catalogBooks(), 0.2, 0.8, 10)
		for _, r := range got.Rows() {
			for _, col := range []string{ColNormPopularity, ColNormRating} {
				v, ok := frame.Float(r[col])
				if !ok || v < 0 || v > 1 {
					t.Errorf("%s = %v for %v", col, r[col], r[ColTitle])
				}
			}
		}
	})

	t.Run("score formula", func(t *testing.T) {
		t.Parallel()
		tbl := books(book(1, "Max", 100, 5, 2000), book(2, "Half", 50, 4, 2000))
		got := Weighted(tbl, 0.2, 0.8, 10)
		assertTitles(t, got, "Max", "Half")

		want := []float64{0.2*1 + 0.8*1, 0.2*0.5 + 0.8*0.8}
		for i, v := range got.Column(ColWeightedScore) {
			score, _ := frame.Float(v)
			if math.Abs(score-want[i]) > epsilon {
				t.Errorf("row %d weighted_score = %v, want %v", i, score, want[i])
			}
		}
	})

	t.Run("zero max count", func(t *testing.T) {
		t.Parallel()
		tbl := books(book(1, "A", 0, 4, 2000), book(2, "B", 0, 5, 2000))
		got := Weighted(tbl, 0.2, 0.8, 10)
		assertTitles(t, got, "B", "A")
		for _, r := range got.Rows() {
			pop, ok := frame.Float(r[ColNormPopularity])
			if !ok || pop != 0 {
				t.Errorf("norm_popularity = %v, want 0", r[ColNormPopularity])
			}
			score, ok := frame.Float(r[ColWeightedScore])
			if !ok || math.IsNaN(score) || math.IsInf(score, 0) {
				t.Errorf("weighted_score = %v, want finite", r[ColWeightedScore])
			}
		}
	})

	t.Run("input not modified", func(t *testing.T) {
		t.Parallel()
		in := catalogBooks()
		_ = Weighted(in, 0.2, 0.8, 10)
		if in.HasColumn(ColWeightedScore) {
			t.Error("Weighted added a column to its input")
		}
	})
}

func TestBayesian(t *testing.T) {
	t.Parallel()

	t.Run("zero count scores the global mean", func(t *testing.T) {
		t.Parallel()
		tbl := books(
			book(1, "Many", 100, 4.0, 2000),
			book(2, "More", 300, 3.0, 2000),
			book(3, "None", 0, 5.0, 2000),
		)
		m := GlobalMeanRating(tbl)
		if m != 3.25 {
			t.Fatalf("GlobalMeanRating = %v, want 3.25", m)
		}

		got := Bayesian(tbl, nil, 10)
		for _, r := range got.Rows() {
			if r[ColTitle] != "None" {
				continue
			}
			if score, _ := frame.Float(r[ColBayesianScore]); score != m {
				t.Errorf("zero-count score = %v, want %v", score, m)
			}
			return
		}
		t.Fatal("zero-count book missing from output")
	})

	t.Run("shrinks toward the mean", func(t *testing.T) {
		t.Parallel()
		c := 10.0
		tbl := books(
			book(1, "Few", 1, 5.0, 2000),
			book(2, "Lots", 1000, 4.5, 2000),
			book(3, "Middling", 1000, 3.0, 2000),
		)
		got := Bayesian(tbl, &c, 10)
		// a single 5-star rating ranks below a well-evidenced 4.5
		assertTitles(t, got, "Lots", "Few", "Middling")
		assertNonIncreasing(t, got, ColBayesianScore)
	})

	t.Run("undefined rows excluded", func(t *testing.T) {
		t.Parallel()
		c := 0.0
		tbl := books(book(1, "Rated", 10, 4.0, 2000), book(2, "Unrated", 0, 5.0, 2000))
		got := Bayesian(tbl, &c, 10)
		assertTitles(t, got, "Rated")
		if score, _ := frame.Float(got.Row(0)[ColBayesianScore]); score != 4.0 {
			t.Errorf("bayesian_score = %v, want 4 with C=0", score)
		}
	})

	t.Run("zero count sum falls back to plain mean", func(t *testing.T) {
		t.Parallel()
		tbl := books(book(1, "A", 0, 4.0, 2000), book(2, "B", 0, 2.0, 2000))
		if m := GlobalMeanRating(tbl); m != 3.0 {
			t.Errorf("GlobalMeanRating = %v, want 3", m)
		}
		c := 5.0
		for _, v := range Bayesian(tbl, &c, 10).Column(ColBayesianScore) {
			if score, _ := frame.Float(v); score != 3.0 {
				t.Errorf("bayesian_score = %v, want 3", score)
			}
		}
		if got := Bayesian(tbl, nil, 10); !got.IsEmpty() {
			t.Errorf("default C is 0 here, every row is undefined; got %d rows", got.Len())
		}
	})
}

func TestFinalize_TitlesAndContributors(t *testing.T) {
	t.Parallel()

	t.Run("duplicate titles keep the best ranked", func(t *testing.T) {
		t.Parallel()
		tbl := books(
			book(1, "Dune", 10, 4, 2000),
			book(2, "Dune", 50, 4, 2000),
			book(3, "Emma", 30, 4, 2000),
		)
		got := Popular(tbl, 10)
		assertTitles(t, got, "Dune", "Emma")
		if count, _ := frame.Int(got.Row(0)[ColRatingsCount]); count != 50 {
			t.Errorf("kept Dune has ratings_count %d, want 50", count)
		}
		assertUniqueTitles(t, got)
	})

	t.Run("untitled rows dropped", func(t *testing.T) {
		t.Parallel()
		untitled := book(1, "", 1000, 4, 2000)
		untitled[ColTitle] = nil
		got := Popular(books(untitled, book(2, "Titled", 1, 4, 2000)), 10)
		assertTitles(t, got, "Titled")
	})

	t.Run("authors renamed to name", func(t *testing.T) {
		t.Parallel()
		got := Popular(catalogBooks(), 1)
		if got.HasColumn(ColAuthors) || !got.HasColumn(ColName) {
			t.Fatalf("columns = %v", got.Columns())
		}
		if name := got.Row(0)[ColName]; name != "Author of Dune" {
			t.Errorf("name = %v", name)
		}
	})

	t.Run("existing name kept with gaps", func(t *testing.T) {
		t.Parallel()
		cols := append([]string{ColName}, bookColumns...)
		a := book(1, "A", 20, 4, 2000)
		a[ColName] = "Real Name"
		b := book(2, "B", 10, 4, 2000)
		b[ColName] = nil
		got := Popular(frame.New(cols, a, b), 10)

		names := got.Column(ColName)
		if !reflect.DeepEqual(names, []any{"Real Name", nil}) {
			t.Errorf("names = %v, want [Real Name <nil>]", names)
		}
	})
}
