// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordDBQuery tests database query metric recording
func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		err       error
		wantErr   float64
	}{
		{"successful load", "LOAD", "books_joined_clean", nil, 0},
		{"successful query", "SELECT", "reviews", nil, 0},
		{"failed load", "LOAD", "broken_file", errors.New("invalid csv"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table))
			RecordDBQuery(tt.operation, tt.table, 5*time.Millisecond, tt.err)
			after := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table))
			if after-before != tt.wantErr {
				t.Errorf("error counter delta = %v, want %v", after-before, tt.wantErr)
			}
		})
	}
}

func TestSetDatasetRows(t *testing.T) {
	SetDatasetRows("books_poetry", 42)
	if got := testutil.ToFloat64(DatasetRows.WithLabelValues("books_poetry")); got != 42 {
		t.Errorf("shelfwise_dataset_rows{books_poetry} = %v, want 42", got)
	}

	SetDatasetRows("books_poetry", 7)
	if got := testutil.ToFloat64(DatasetRows.WithLabelValues("books_poetry")); got != 7 {
		t.Errorf("shelfwise_dataset_rows{books_poetry} = %v, want 7 after reload", got)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		requestType string
		outcome     string
	}{
		{"popular", OutcomeRanked},
		{"genre", OutcomeDiagnostic},
		{"interactions", OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.requestType+"/"+tt.outcome, func(t *testing.T) {
			counter := RecommendationsTotal.WithLabelValues(tt.requestType, tt.outcome)
			before := testutil.ToFloat64(counter)
			RecordRecommendation(tt.requestType, tt.outcome, time.Millisecond)
			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("counter delta = %v, want 1", got)
			}
		})
	}
}

func TestRecordCacheLookup(t *testing.T) {
	tests := []struct {
		hit   bool
		label string
	}{
		{true, "hit"},
		{false, "miss"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			counter := RecommendationCacheLookups.WithLabelValues(tt.label)
			before := testutil.ToFloat64(counter)
			RecordCacheLookup(tt.hit)
			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("counter delta = %v, want 1", got)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/v1/recommendations", "200", 20*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", got)
	}
}

func TestRecordRateLimitHit(t *testing.T) {
	counter := APIRateLimitHits.WithLabelValues("/api/v1/recommendations")
	before := testutil.ToFloat64(counter)

	RecordRateLimitHit("/api/v1/recommendations")

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("api_rate_limit_hits_total delta = %v, want 1", got)
	}
}

// TestTrackActiveRequest_Concurrent checks the gauge returns to its start value
func TestTrackActiveRequest_Concurrent(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v", got, before)
	}
}
