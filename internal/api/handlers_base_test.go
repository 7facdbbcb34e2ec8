// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/frame"
	"github.com/tomtom215/shelfwise/internal/models"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

var testBookColumns = []string{
	recommend.ColBookID, recommend.ColBestBookID, recommend.ColTitle, recommend.ColAuthors,
	recommend.ColRatingsCount, recommend.ColAverageRating, recommend.ColPublicationYear,
}

func testBook(id int64, title string, count int64, rating float64, year int64) frame.Row {
	return frame.Row{
		recommend.ColBookID:          id + 1000,
		recommend.ColBestBookID:      id,
		recommend.ColTitle:           title,
		recommend.ColAuthors:         "Author of " + title,
		recommend.ColRatingsCount:    count,
		recommend.ColAverageRating:   rating,
		recommend.ColPublicationYear: year,
	}
}

func testReview(bookID int64, date string) frame.Row {
	return frame.Row{recommend.ColBookID: bookID, "user_id": "u1", "date_added": date}
}

// testCatalog holds the main book table, a poetry subset and a review log.
// Emma has two reviews and Circe one inside the last 90 days; Dune's single
// review is older.
func testCatalog() recommend.Datasets {
	books := frame.New(testBookColumns,
		testBook(1, "Dune", 500, 4.2, 1965),
		testBook(2, "Emma", 300, 3.9, 1815),
		testBook(3, "Circe", 200, 4.3, 2016),
		testBook(4, "Origin", 400, 3.7, 2017),
	)
	poetry := frame.New(testBookColumns,
		testBook(10, "Odes", 75, 4.6, 1819),
		testBook(11, "Leaves of Grass", 120, 4.1, 1855),
	)
	reviews := frame.New([]string{recommend.ColBookID, "user_id", "date_added"},
		testReview(2, "2017-10-01T12:00:00Z"),
		testReview(2, "2017-09-25T12:00:00Z"),
		testReview(3, "2017-09-01T12:00:00Z"),
		testReview(1, "2017-01-01T12:00:00Z"),
	)
	return recommend.Datasets{
		recommend.DatasetBooks:   books,
		"books_poetry":           poetry,
		recommend.DatasetReviews: reviews,
	}
}

func newTestHandler(t *testing.T, catalog recommend.Datasets) *Handler {
	t.Helper()
	rec, err := recommend.NewRecommender(catalog, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRecommender() error = %v", err)
	}
	return NewHandler(rec, nil, &config.Config{})
}

// newTestRouter builds the full router with rate limiting disabled.
func newTestRouter(t *testing.T, catalog recommend.Datasets) http.Handler {
	t.Helper()
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitDisabled = true
	return NewRouter(newTestHandler(t, catalog), NewChiMiddleware(mw)).SetupChi()
}

// envelope is models.APIResponse with data left raw for typed decoding.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not a JSON envelope: %q (%v)", rec.Body.String(), err)
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("failed to decode data %s: %v", env.Data, err)
	}
	return out
}

func titles(resp models.RecommendationResponse) []string {
	out := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		s, _ := item[recommend.ColTitle].(string)
		out = append(out, s)
	}
	return out
}

// stubPinger returns err from Ping.
type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

var errDatabaseDown = errors.New("database down")
