// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/shelfwise/internal/models"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK as long as the process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, r, models.HealthResponse{
		Status:  "alive",
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Version: h.version,
	}, start)
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 OK once the book catalog is loaded and the database answers,
// 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	loaded := 0
	booksLoaded := false
	if h.recommender != nil {
		catalog := h.recommender.Catalog()
		loaded = len(catalog)
		_, err := catalog.Lookup(recommend.DatasetBooks)
		booksLoaded = err == nil
	}

	if !booksLoaded {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"book catalog not loaded", nil)
		return
	}
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
				"database unavailable", err)
			return
		}
	}

	respondSuccess(w, r, models.HealthResponse{
		Status:   "ready",
		Datasets: loaded,
		Uptime:   time.Since(h.startTime).Round(time.Second).String(),
		Version:  h.version,
	}, start)
}
