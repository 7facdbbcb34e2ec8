// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shelfwise/internal/recommend"
)

// maxRequestBodyBytes caps POST bodies; a RequestSpec is a handful of fields.
const maxRequestBodyBytes = 64 << 10

// errMalformedParam marks query or body values that cannot be parsed at all.
var errMalformedParam = errors.New("malformed parameter")

// parseRecommendationQuery builds a RequestSpec from GET query parameters.
// Parameters that are absent stay nil so configured defaults apply.
func parseRecommendationQuery(q url.Values) (recommend.RequestSpec, error) {
	spec := recommend.RequestSpec{
		Type:         strings.TrimSpace(q.Get("type")),
		DateColumn:   strings.TrimSpace(q.Get("date_col")),
		Genre:        strings.TrimSpace(q.Get("genre")),
		Method:       strings.TrimSpace(q.Get("method")),
		Interactions: strings.TrimSpace(q.Get("interactions")),
	}

	var err error
	if spec.N, err = optionalInt(q, "n"); err != nil {
		return spec, err
	}
	if spec.Years, err = optionalInt(q, "years"); err != nil {
		return spec, err
	}
	if spec.Days, err = optionalInt(q, "days"); err != nil {
		return spec, err
	}
	if spec.W1, err = optionalFloat(q, "w1"); err != nil {
		return spec, err
	}
	if spec.W2, err = optionalFloat(q, "w2"); err != nil {
		return spec, err
	}
	if spec.C, err = optionalFloat(q, "c"); err != nil {
		return spec, err
	}
	return spec, nil
}

func optionalInt(q url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", errMalformedParam, key, raw)
	}
	return &v, nil
}

func optionalFloat(q url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %s must be a finite number, got %q", errMalformedParam, key, raw)
	}
	return &v, nil
}

// decodeRecommendationBody decodes a POST body into a RequestSpec. Unknown
// fields and trailing data are rejected.
func decodeRecommendationBody(w http.ResponseWriter, r *http.Request) (recommend.RequestSpec, error) {
	var spec recommend.RequestSpec

	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return spec, fmt.Errorf("%w: request body is empty", errMalformedParam)
		}
		return spec, fmt.Errorf("%w: invalid JSON body: %v", errMalformedParam, err)
	}
	if decoder.More() {
		return spec, fmt.Errorf("%w: request body must contain a single JSON object", errMalformedParam)
	}
	return spec, nil
}
