// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package models defines the JSON shapes served by the HTTP API.

Key Components:

  - APIResponse: envelope with status, data, metadata and error
  - APIError: machine-readable code plus message
  - RecommendationResponse: a ranked list or a diagnostic message
  - DatasetsResponse, GenresResponse, HealthResponse: catalog introspection

Ranked rows have dataset-dependent columns, so items are plain maps. Cells
pass through SanitizeRow before encoding because scores may be NaN when a
dataset has gaps and encoding/json rejects NaN.
*/
package models
