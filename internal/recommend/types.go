// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"fmt"
	"slices"

	"github.com/tomtom215/shelfwise/internal/frame"
)

// Column names read or produced by the rankings.
const (
	ColBookID          = "book_id"
	ColBestBookID      = "best_book_id"
	ColTitle           = "title"
	ColName            = "name"
	ColAuthors         = "authors"
	ColRatingsCount    = "ratings_count"
	ColAverageRating   = "average_rating"
	ColPublicationYear = "publication_year"

	ColNormPopularity     = "norm_popularity"
	ColNormRating         = "norm_rating"
	ColWeightedScore      = "weighted_score"
	ColBayesianScore      = "bayesian_score"
	ColRecentInteractions = "recent_interactions"
	ColStartedCount       = "started_count"
	ColReviewCount        = "review_count"
	ColFinishedCount      = "finished_count"
)

// Logical dataset names.
const (
	DatasetBooks           = "books_joined_clean"
	DatasetReviews         = "reviews"
	DatasetUserInteraction = "user_interaction"
	DatasetStarted         = "reviews_started_clean"
	DatasetAdded           = "reviews_added_clean"
	DatasetFinished        = "reviews_read_clean"
)

// genreDatasets maps each genre name to its book subset dataset.
var genreDatasets = map[string]string{
	"children":    "books_children",
	"comics":      "books_comics",
	"fantasy":     "books_fantasy",
	"history":     "books_history",
	"mystery":     "books_mystery",
	"poetry":      "books_poetry",
	"romance":     "books_romance",
	"young_adult": "books_young_adult",
}

// Genres returns the supported genre names in alphabetical order.
func Genres() []string {
	out := make([]string, 0, len(genreDatasets))
	for g := range genreDatasets {
		out = append(out, g)
	}
	slices.Sort(out)
	return out
}

// GenreDataset returns the dataset name holding a genre's books.
func GenreDataset(genre string) (string, bool) {
	name, ok := genreDatasets[genre]
	return name, ok
}

// Datasets maps logical dataset names to loaded tables.
// Tables are treated as immutable once placed in the map.
type Datasets map[string]*frame.Table

// Lookup returns the named table or ErrMissingDataset.
func (d Datasets) Lookup(name string) (*frame.Table, error) {
	t, ok := d[name]
	if !ok || t == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingDataset, name)
	}
	return t, nil
}

// Names returns the dataset names in alphabetical order.
func (d Datasets) Names() []string {
	out := make([]string, 0, len(d))
	for name := range d {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Result is the outcome of a ranking: either a ranked table or a diagnostic
// message explaining why there is nothing to rank. Exactly one is set.
type Result struct {
	Table      *frame.Table
	Diagnostic string

	// Dropped counts input rows discarded for unparseable timestamps.
	Dropped int
}

// Ranked wraps a table as a Result.
func Ranked(t *frame.Table) Result {
	return Result{Table: t}
}

// Diagnosed wraps an informational message as a Result.
func Diagnosed(msg string) Result {
	return Result{Diagnostic: msg}
}

// IsDiagnostic reports whether the result carries a message instead of a table.
func (r Result) IsDiagnostic() bool {
	return r.Diagnostic != ""
}

// Method selects the ranking family applied to a genre subset.
type Method string

// Ranking families available to genre requests.
const (
	MethodPopular              Method = "popular"
	MethodTrending             Method = "trending"
	MethodWeighted             Method = "weighted"
	MethodBayesian             Method = "bayesian"
	MethodTrendingInteractions Method = "trending_interactions"
)

// Valid reports whether m names a supported ranking family.
func (m Method) Valid() bool {
	switch m {
	case MethodPopular, MethodTrending, MethodWeighted, MethodBayesian, MethodTrendingInteractions:
		return true
	default:
		return false
	}
}

// RequestType identifies the kind of a ranking request.
type RequestType string

// Request kinds accepted by the dispatcher.
const (
	TypePopular      RequestType = "popular"
	TypeTrending     RequestType = "trending"
	TypeInteractions RequestType = "interactions"
	TypeWeighted     RequestType = "weighted"
	TypeBayesian     RequestType = "bayesian"
	TypeGenre        RequestType = "genre"
	TypeReading      RequestType = "reading"
	TypeBuzzing      RequestType = "buzzing"
	TypePageTurners  RequestType = "page_turners"
)

// RequestTypes lists every request kind in dispatch order.
var RequestTypes = []RequestType{
	TypePopular, TypeTrending, TypeInteractions, TypeWeighted, TypeBayesian,
	TypeGenre, TypeReading, TypeBuzzing, TypePageTurners,
}

// Valid reports whether t is a supported request kind.
func (t RequestType) Valid() bool {
	return slices.Contains(RequestTypes, t)
}
