// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfwise/internal/frame"
	"github.com/tomtom215/shelfwise/internal/logging"
	"github.com/tomtom215/shelfwise/internal/metrics"
)

// Recommender routes ranking requests to the ranking functions over an
// injected catalog. It holds no mutable state besides counters and is safe
// for concurrent use.
type Recommender struct {
	catalog Datasets
	config  *Config
	logger  zerolog.Logger

	requests    atomic.Int64
	diagnostics atomic.Int64
	failures    atomic.Int64
}

// Stats is a snapshot of dispatcher counters.
type Stats struct {
	Requests    int64 `json:"requests"`
	Diagnostics int64 `json:"diagnostics"`
	Failures    int64 `json:"failures"`
}

// NewRecommender creates a recommender over catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRecommender(catalog Datasets, cfg *Config, logger zerolog.Logger) (*Recommender, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil {
		catalog = Datasets{}
	}

	return &Recommender{
		catalog: catalog,
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the recommender configuration.
func (r *Recommender) Config() *Config {
	return r.config.Clone()
}

// Catalog returns the datasets the recommender ranks over.
func (r *Recommender) Catalog() Datasets {
	return r.catalog
}

// Stats returns dispatcher counters.
func (r *Recommender) Stats() Stats {
	return Stats{
		Requests:    r.requests.Load(),
		Diagnostics: r.diagnostics.Load(),
		Failures:    r.failures.Load(),
	}
}

// GetRecommendations ranks books for req and returns the top n. A
// non-positive n uses the configured default and n is capped at the limit.
//
// Configuration problems are returned as errors. "Nothing to show" outcomes,
// such as an unknown genre or an empty interaction window, are returned as a
// Result carrying a diagnostic message.
func (r *Recommender) GetRecommendations(ctx context.Context, req Request, n int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if req == nil {
		return Result{}, fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}

	start := time.Now()
	n = r.config.ClampN(n)
	r.requests.Add(1)

	logCtx := r.logger.With().
		Str("type", string(req.Type())).
		Int("n", n)
	if id := logging.RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	if g, ok := req.(GenreRequest); ok {
		logCtx = logCtx.Str("genre", g.Genre).Str("method", string(g.Method))
	}
	logger := logCtx.Logger()

	result, err := r.dispatch(req, n)
	elapsed := time.Since(start)

	if result.Dropped > 0 {
		logger.Warn().Int("dropped_rows", result.Dropped).Msg("interaction rows with unparseable timestamps")
	}

	var event *zerolog.Event
	outcome := metrics.OutcomeRanked
	switch {
	case err != nil:
		r.failures.Add(1)
		outcome = metrics.OutcomeError
		event = logger.Warn().Err(err)
	case result.IsDiagnostic():
		r.diagnostics.Add(1)
		outcome = metrics.OutcomeDiagnostic
		event = logger.Debug().Str("diagnostic", result.Diagnostic)
	default:
		event = logger.Debug().Int("results", result.Table.Len())
	}
	event.Dur("latency", elapsed).Msg("recommendation request")
	metrics.RecordRecommendation(string(req.Type()), outcome, elapsed)

	return result, err
}

func (r *Recommender) dispatch(req Request, n int) (Result, error) {
	switch q := req.(type) {
	case PopularRequest:
		books, err := r.catalog.Lookup(DatasetBooks)
		if err != nil {
			return Result{}, err
		}
		return Ranked(Popular(books, n)), nil

	case TrendingRequest:
		books, err := r.catalog.Lookup(DatasetBooks)
		if err != nil {
			return Result{}, err
		}
		return Ranked(Trending(books, r.trendingOptions(q.Years, q.ReferenceYear), n)), nil

	case InteractionsRequest:
		books, err := r.catalog.Lookup(DatasetBooks)
		if err != nil {
			return Result{}, err
		}
		reviews, err := r.catalog.Lookup(DatasetReviews)
		if err != nil {
			return Result{}, err
		}
		return TrendingByInteractions(reviews, books, r.interactionOptions(q.Days, q.DateColumn), n)

	case WeightedRequest:
		books, err := r.catalog.Lookup(DatasetBooks)
		if err != nil {
			return Result{}, err
		}
		return Ranked(Weighted(books, q.W1, q.W2, n)), nil

	case BayesianRequest:
		books, err := r.catalog.Lookup(DatasetBooks)
		if err != nil {
			return Result{}, err
		}
		return Ranked(Bayesian(books, q.C, n)), nil

	case ActivityRequest:
		return r.dispatchActivity(q, n)

	case GenreRequest:
		return r.dispatchGenre(q, n)

	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownRequestType, req.Type())
	}
}

func (r *Recommender) dispatchActivity(q ActivityRequest, n int) (Result, error) {
	books, err := r.catalog.Lookup(DatasetBooks)
	if err != nil {
		return Result{}, err
	}
	log, err := r.catalog.Lookup(q.Activity.Dataset())
	if err != nil {
		return Result{}, err
	}
	ranked, err := ActivityCounts(log, books, q.Activity, n)
	if err != nil {
		return Result{}, err
	}
	return Ranked(ranked), nil
}

func (r *Recommender) dispatchGenre(q GenreRequest, n int) (Result, error) {
	datasetName, ok := GenreDataset(q.Genre)
	if !ok {
		return Diagnosed(UnknownGenreMessage(q.Genre)), nil
	}
	books, err := r.catalog.Lookup(datasetName)
	if err != nil {
		return Result{}, err
	}

	method := q.Method
	if method == "" {
		method = r.config.Defaults.GenreMethod
	}

	d := r.config.Defaults
	opts := GenreOptions{
		Method:      method,
		Trending:    r.trendingOptions(valueOr(q.Years, d.TrendingYears), q.ReferenceYear),
		Interaction: r.interactionOptions(valueOr(q.Days, d.LastDays), q.DateColumn),
		W1:          valueOr(q.W1, d.WeightPopularity),
		W2:          valueOr(q.W2, d.WeightRating),
		C:           q.C,
	}
	if method == MethodTrendingInteractions {
		opts.Interactions, err = r.interactionLog(q.Interactions)
		if err != nil {
			return Result{}, err
		}
	}

	return RecommendGenre(books, opts, n)
}

// interactionLog resolves the log named by a genre request. Naming no log,
// or one that is not loaded, is a missing collaborator.
func (r *Recommender) interactionLog(name string) (*frame.Table, error) {
	if name == "" {
		return nil, ErrMissingInteractions
	}
	log, err := r.catalog.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingInteractions, err)
	}
	return log, nil
}

func (r *Recommender) trendingOptions(years, referenceYear int) TrendingOptions {
	if referenceYear == 0 {
		referenceYear = r.config.Defaults.ReferenceYear
	}
	return TrendingOptions{Years: years, ReferenceYear: referenceYear}
}

func (r *Recommender) interactionOptions(days int, dateColumn string) InteractionOptions {
	if dateColumn == "" {
		dateColumn = r.config.Defaults.DateColumn
	}
	return InteractionOptions{DateColumn: dateColumn, LastDays: days}
}
