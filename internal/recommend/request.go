// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"fmt"

	"github.com/tomtom215/shelfwise/internal/validation"
)

// Request is a ranking request. The set of implementations is closed; use
// RequestSpec.Build to construct one from untrusted input.
type Request interface {
	Type() RequestType
	request()
}

// PopularRequest ranks the full catalog by ratings_count.
type PopularRequest struct{}

// TrendingRequest ranks recently published books by ratings_count.
type TrendingRequest struct {
	Years         int
	ReferenceYear int
}

// InteractionsRequest ranks books by recent reviews.
type InteractionsRequest struct {
	Days       int
	DateColumn string
}

// WeightedRequest ranks books by weighted popularity and rating.
type WeightedRequest struct {
	W1, W2 float64
}

// BayesianRequest ranks books by Bayesian-shrunk rating. A nil C uses the
// mean ratings_count.
type BayesianRequest struct {
	C *float64
}

// GenreRequest applies a ranking family to one genre subset. An empty
// Method, a zero ReferenceYear, an empty DateColumn and nil parameters take
// the configured defaults.
type GenreRequest struct {
	Genre  string
	Method Method

	Years         *int
	ReferenceYear int
	Days          *int
	DateColumn    string
	W1, W2        *float64
	C             *float64

	// Interactions names the interaction-log dataset used by
	// MethodTrendingInteractions.
	Interactions string
}

// ActivityRequest ranks books by an activity log count.
type ActivityRequest struct {
	Activity Activity
}

func (PopularRequest) Type() RequestType      { return TypePopular }
func (TrendingRequest) Type() RequestType     { return TypeTrending }
func (InteractionsRequest) Type() RequestType { return TypeInteractions }
func (WeightedRequest) Type() RequestType     { return TypeWeighted }
func (BayesianRequest) Type() RequestType     { return TypeBayesian }
func (GenreRequest) Type() RequestType        { return TypeGenre }

func (r ActivityRequest) Type() RequestType {
	switch r.Activity {
	case ActivityAdded:
		return TypeBuzzing
	case ActivityFinished:
		return TypePageTurners
	default:
		return TypeReading
	}
}

func (PopularRequest) request()      {}
func (TrendingRequest) request()     {}
func (InteractionsRequest) request() {}
func (WeightedRequest) request()     {}
func (BayesianRequest) request()     {}
func (GenreRequest) request()        {}
func (ActivityRequest) request()     {}

// RequestSpec is the wire form of a ranking request. Optional parameters are
// pointers so an explicit zero can be told apart from an omitted value.
type RequestSpec struct {
	Type         string   `json:"type" validate:"required,max=32"`
	N            *int     `json:"n,omitempty" validate:"omitempty,min=1"`
	Years        *int     `json:"years,omitempty" validate:"omitempty,min=0,max=1000"`
	Days         *int     `json:"days,omitempty" validate:"omitempty,min=0,max=36500"`
	DateColumn   string   `json:"date_col,omitempty" validate:"omitempty,max=64,identifier"`
	W1           *float64 `json:"w1,omitempty" validate:"omitempty,min=0"`
	W2           *float64 `json:"w2,omitempty" validate:"omitempty,min=0"`
	C            *float64 `json:"c,omitempty" validate:"omitempty,min=0"`
	Genre        string   `json:"genre,omitempty" validate:"required_if=Type genre,max=64"`
	Method       string   `json:"method,omitempty" validate:"max=32"`
	Interactions string   `json:"interactions,omitempty" validate:"omitempty,max=64,identifier"`
}

// Build validates the spec and converts it into a typed Request and result
// size, filling omitted parameters from cfg.
//
// Malformed values wrap ErrInvalidRequest together with the
// *validation.RequestValidationError describing them. An unknown type or
// genre method returns ErrUnknownRequestType or ErrUnknownMethod. An unknown
// genre name is not an error here; it is reported as a diagnostic at dispatch.
func (s RequestSpec) Build(cfg *Config) (Request, int, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if verr := validation.ValidateStruct(&s); verr != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidRequest, verr)
	}

	n := cfg.Defaults.N
	if s.N != nil {
		if *s.N > cfg.Limits.MaxN {
			return nil, 0, fmt.Errorf("%w: n must be at most %d, got %d", ErrInvalidRequest, cfg.Limits.MaxN, *s.N)
		}
		n = cfg.ClampN(*s.N)
	}

	d := cfg.Defaults
	years := valueOr(s.Years, d.TrendingYears)
	days := valueOr(s.Days, d.LastDays)
	w1 := valueOr(s.W1, d.WeightPopularity)
	w2 := valueOr(s.W2, d.WeightRating)
	dateColumn := s.DateColumn
	if dateColumn == "" {
		dateColumn = d.DateColumn
	}

	switch RequestType(s.Type) {
	case TypePopular:
		return PopularRequest{}, n, nil
	case TypeTrending:
		return TrendingRequest{Years: years, ReferenceYear: d.ReferenceYear}, n, nil
	case TypeInteractions:
		return InteractionsRequest{Days: days, DateColumn: dateColumn}, n, nil
	case TypeWeighted:
		return WeightedRequest{W1: w1, W2: w2}, n, nil
	case TypeBayesian:
		return BayesianRequest{C: s.C}, n, nil
	case TypeReading:
		return ActivityRequest{Activity: ActivityStarted}, n, nil
	case TypeBuzzing:
		return ActivityRequest{Activity: ActivityAdded}, n, nil
	case TypePageTurners:
		return ActivityRequest{Activity: ActivityFinished}, n, nil
	case TypeGenre:
		method := Method(s.Method)
		if method == "" {
			method = d.GenreMethod
		}
		if !method.Valid() {
			return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s.Method)
		}
		return GenreRequest{
			Genre:         s.Genre,
			Method:        method,
			Years:         &years,
			ReferenceYear: d.ReferenceYear,
			Days:          &days,
			DateColumn:    dateColumn,
			W1:            &w1,
			W2:            &w2,
			C:             s.C,
			Interactions:  s.Interactions,
		}, n, nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownRequestType, s.Type)
	}
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
