// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package models

import (
	"math"
	"time"
)

// RecommendationResponse is the data payload of a ranking request.
//
// A ranked result carries Columns and Items in rank order. A diagnostic
// result has Diagnostic set, a Message explaining why nothing was ranked and
// no items. Clients must check Diagnostic before reading Items.
type RecommendationResponse struct {
	Type       string                   `json:"type"`
	N          int                      `json:"n"`
	Count      int                      `json:"count"`
	Diagnostic bool                     `json:"diagnostic"`
	Message    string                   `json:"message,omitempty"`
	Dropped    int                      `json:"dropped_rows,omitempty"`
	Columns    []string                 `json:"columns,omitempty"`
	Items      []map[string]interface{} `json:"items"`
}

// DatasetInfo describes one loaded dataset.
type DatasetInfo struct {
	Name    string   `json:"name"`
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
}

// DatasetsResponse lists the loaded catalog.
type DatasetsResponse struct {
	Count    int           `json:"count"`
	Datasets []DatasetInfo `json:"datasets"`
}

// GenresResponse lists the supported genres and ranking methods.
type GenresResponse struct {
	Genres  []string `json:"genres"`
	Methods []string `json:"methods"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status   string `json:"status"`
	Datasets int    `json:"datasets"`
	Uptime   string `json:"uptime,omitempty"`
	Version  string `json:"version,omitempty"`
}

// SanitizeRow returns a copy of row that encodes as JSON. NaN and infinite
// floats become null, byte slices become strings and times are UTC.
func SanitizeRow(row map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(row))
	for k, v := range row {
		out[k] = SanitizeValue(v)
	}
	return out
}

// SanitizeValue converts a single cell to a JSON-encodable value.
func SanitizeValue(v interface{}) interface{} {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
		return x
	case float32:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	case []byte:
		return string(x)
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return x.UTC()
	default:
		return v
	}
}
