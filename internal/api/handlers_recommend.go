// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/shelfwise/internal/models"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

// GetRecommendations handles GET /api/v1/recommendations.
//
// Query parameters mirror the POST body: type (required), n, years, days,
// date_col, w1, w2, c, genre, method and interactions.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	spec, err := parseRecommendationQuery(r.URL.Query())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	h.serveRecommendations(w, r, spec, start)
}

// PostRecommendations handles POST /api/v1/recommendations with a JSON
// RequestSpec body.
func (h *Handler) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	spec, err := decodeRecommendationBody(w, r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	h.serveRecommendations(w, r, spec, start)
}

func (h *Handler) serveRecommendations(w http.ResponseWriter, r *http.Request, spec recommend.RequestSpec, start time.Time) {
	req, n, err := spec.Build(h.recommender.Config())
	if err != nil {
		status, apiErr := toAPIError(err)
		respondErrorDetails(w, r, status, apiErr, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	result, err := h.recommender.GetRecommendations(ctx, req, n)
	if err != nil {
		status, apiErr := toAPIError(err)
		respondErrorDetails(w, r, status, apiErr, err)
		return
	}

	respondSuccess(w, r, newRecommendationResponse(req.Type(), n, result), start)
}

// newRecommendationResponse converts a ranking result to its wire form.
func newRecommendationResponse(t recommend.RequestType, n int, result recommend.Result) models.RecommendationResponse {
	resp := models.RecommendationResponse{
		Type:    string(t),
		N:       n,
		Dropped: result.Dropped,
		Items:   []map[string]interface{}{},
	}

	if result.IsDiagnostic() {
		resp.Diagnostic = true
		resp.Message = result.Diagnostic
		return resp
	}
	if result.Table == nil {
		return resp
	}

	resp.Columns = result.Table.Columns()
	for _, row := range result.Table.Rows() {
		resp.Items = append(resp.Items, models.SanitizeRow(row))
	}
	resp.Count = len(resp.Items)
	return resp
}

// Genres handles GET /api/v1/genres.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	methods := []string{
		string(recommend.MethodPopular),
		string(recommend.MethodTrending),
		string(recommend.MethodWeighted),
		string(recommend.MethodBayesian),
		string(recommend.MethodTrendingInteractions),
	}
	respondSuccess(w, r, models.GenresResponse{
		Genres:  recommend.Genres(),
		Methods: methods,
	}, start)
}

// Datasets handles GET /api/v1/datasets.
func (h *Handler) Datasets(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	catalog := h.recommender.Catalog()
	infos := make([]models.DatasetInfo, 0, len(catalog))
	for _, name := range catalog.Names() {
		table, err := catalog.Lookup(name)
		if err != nil {
			continue
		}
		infos = append(infos, models.DatasetInfo{
			Name:    name,
			Rows:    table.Len(),
			Columns: table.Columns(),
		})
	}

	respondSuccess(w, r, models.DatasetsResponse{
		Count:    len(infos),
		Datasets: infos,
	}, start)
}

// NotFound handles unmatched routes with a JSON envelope.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil)
}

// MethodNotAllowed handles known routes hit with the wrong verb.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
}

