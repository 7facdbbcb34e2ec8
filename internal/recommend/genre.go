// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"fmt"

	"github.com/tomtom215/shelfwise/internal/frame"
)

// GenreOptions carries the parameters forwarded to the ranking family chosen
// for a genre subset.
type GenreOptions struct {
	Method      Method
	Trending    TrendingOptions
	Interaction InteractionOptions
	W1, W2      float64
	C           *float64

	// Interactions is required by MethodTrendingInteractions only.
	Interactions *frame.Table
}

// RecommendGenre applies the selected ranking family to a genre's books.
func RecommendGenre(genreBooks *frame.Table, opts GenreOptions, n int) (Result, error) {
	switch opts.Method {
	case MethodPopular:
		return Ranked(Popular(genreBooks, n)), nil
	case MethodTrending:
		return Ranked(Trending(genreBooks, opts.Trending, n)), nil
	case MethodWeighted:
		return Ranked(Weighted(genreBooks, opts.W1, opts.W2, n)), nil
	case MethodBayesian:
		return Ranked(Bayesian(genreBooks, opts.C, n)), nil
	case MethodTrendingInteractions:
		if opts.Interactions == nil {
			return Result{}, ErrMissingInteractions
		}
		return TrendingByInteractions(opts.Interactions, genreBooks, opts.Interaction, n)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// UnknownGenreMessage is the diagnostic returned for an unregistered genre.
func UnknownGenreMessage(genre string) string {
	return fmt.Sprintf("Genre '%s' not available.", genre)
}
