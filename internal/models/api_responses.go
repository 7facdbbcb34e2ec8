// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"type": "popular", "count": 2, "items": [...]},
//	  "metadata": {
//	    "timestamp": "2026-10-17T12:00:00Z",
//	    "query_time_ms": 3,
//	    "request_id": "0c6a..."
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "UNKNOWN_METHOD",
//	    "message": "unknown method, choose from: ..."
//	  },
//	  "metadata": {"timestamp": "2026-10-17T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: malformed request parameters
//   - UNKNOWN_REQUEST_TYPE: type is not a supported ranking
//   - UNKNOWN_METHOD: genre method is not a supported ranking family
//   - MISSING_INTERACTIONS: trending_interactions without an interaction log
//   - MISSING_JOIN_KEY: a book dataset lacks both identifier columns
//   - MISSING_DATASET: a dataset the ranking needs was not loaded
//   - RATE_LIMIT_EXCEEDED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
