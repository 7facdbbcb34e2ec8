// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"github.com/tomtom215/shelfwise/internal/frame"
)

// maxAverageRating is the top of the Goodreads rating scale.
const maxAverageRating = 5.0

// TrendingOptions parameterizes trending-by-recency.
type TrendingOptions struct {
	// Years is the publication window ending at ReferenceYear.
	Years int

	// ReferenceYear is the dataset's collection cutoff year.
	ReferenceYear int
}

// DefaultTrendingOptions returns the two-year window ending in 2017.
func DefaultTrendingOptions() TrendingOptions {
	return TrendingOptions{Years: 2, ReferenceYear: 2017}
}

// Popular ranks books by ratings_count, highest first.
func Popular(books *frame.Table, n int) *frame.Table {
	return finalize(books, frame.FloatKey(ColRatingsCount), n)
}

// Trending ranks books published within the trailing window by ratings_count.
// Books without a publication year are outside every window.
func Trending(books *frame.Table, opts TrendingOptions, n int) *frame.Table {
	cutoff := float64(YearCutoff(opts.ReferenceYear, opts.Years))
	recent := books.Filter(func(r frame.Row) bool {
		year, ok := frame.Float(r[ColPublicationYear])
		return ok && year >= cutoff
	})
	return finalize(recent, frame.FloatKey(ColRatingsCount), n)
}

// Weighted ranks books by w1*norm_popularity + w2*norm_rating, where
// norm_popularity is ratings_count over the table maximum and norm_rating is
// average_rating over 5. When the maximum count is zero or absent,
// norm_popularity is 0 for every book.
func Weighted(books *frame.Table, w1, w2 float64, n int) *frame.Table {
	maxCount, ok := books.MaxFloat(ColRatingsCount)
	if !ok || maxCount <= 0 {
		maxCount = 0
	}

	scored := books.
		WithColumn(ColNormPopularity, func(r frame.Row) any {
			count, ok := frame.Float(r[ColRatingsCount])
			if !ok {
				return nil
			}
			if maxCount == 0 {
				return 0.0
			}
			return count / maxCount
		}).
		WithColumn(ColNormRating, func(r frame.Row) any {
			rating, ok := frame.Float(r[ColAverageRating])
			if !ok {
				return nil
			}
			return rating / maxAverageRating
		}).
		WithColumn(ColWeightedScore, func(r frame.Row) any {
			pop, okPop := frame.Float(r[ColNormPopularity])
			rating, okRating := frame.Float(r[ColNormRating])
			if !okPop || !okRating {
				return nil
			}
			return w1*pop + w2*rating
		})

	return finalize(scored, frame.FloatKey(ColWeightedScore), n)
}

// Bayesian ranks books by (C*m + count*rating) / (C + count), where m is the
// count-weighted mean rating of the table. A nil c uses the mean ratings_count.
// When the table has no ratings at all, m falls back to the plain mean rating
// (0 when no book has one). Books with C + count == 0 are excluded.
func Bayesian(books *frame.Table, c *float64, n int) *frame.Table {
	m := GlobalMeanRating(books)

	confidence := 0.0
	if c != nil {
		confidence = *c
	} else {
		confidence = meanRatingsCount(books)
	}

	scored := books.
		WithColumn(ColBayesianScore, func(r frame.Row) any {
			count, okCount := frame.Float(r[ColRatingsCount])
			rating, okRating := frame.Float(r[ColAverageRating])
			if !okCount || !okRating {
				return nil
			}
			if count == 0 {
				if confidence == 0 {
					return nil
				}
				return m
			}
			denom := confidence + count
			if denom == 0 {
				return nil
			}
			return (confidence*m + count*rating) / denom
		}).
		DropMissing(ColBayesianScore)

	return finalize(scored, frame.FloatKey(ColBayesianScore), n)
}

// GlobalMeanRating returns sum(rating*count)/sum(count) over rows carrying both
// values, or the unweighted mean rating when the count sum is zero.
func GlobalMeanRating(books *frame.Table) float64 {
	var weighted, counts, ratings float64
	var rated int
	for _, r := range books.Rows() {
		rating, ok := frame.Float(r[ColAverageRating])
		if !ok {
			continue
		}
		ratings += rating
		rated++
		if count, ok := frame.Float(r[ColRatingsCount]); ok {
			weighted += rating * count
			counts += count
		}
	}
	switch {
	case counts != 0:
		return weighted / counts
	case rated > 0:
		return ratings / float64(rated)
	default:
		return 0
	}
}

func meanRatingsCount(books *frame.Table) float64 {
	var sum float64
	var seen int
	for _, v := range books.Column(ColRatingsCount) {
		if count, ok := frame.Float(v); ok {
			sum += count
			seen++
		}
	}
	if seen == 0 {
		return 0
	}
	return sum / float64(seen)
}

// finalize prepares a scored table for presentation: contributor columns are
// reconciled, untitled rows dropped, rows ordered by key, duplicate titles
// collapsed onto their best-ranked row, and the result truncated to n.
func finalize(t *frame.Table, key frame.KeyFunc, n int) *frame.Table {
	return ReconcileContributor(t).
		DropMissing(ColTitle).
		SortDesc(key).
		DropDuplicates(ColTitle).
		Head(n)
}
