// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package metrics provides Prometheus instrumentation for Shelfwise.

All collectors are registered with the default registry through promauto and
are exposed by the API router at /metrics.

# Metric Families

DuckDB:
  - duckdb_query_duration_seconds{operation,table}
  - duckdb_query_errors_total{operation,table}

Catalog:
  - shelfwise_dataset_rows{dataset}: rows per loaded dataset
  - shelfwise_datasets_loaded: datasets in the catalog

Recommendations:
  - shelfwise_recommendations_total{type,outcome}: outcome is ranked, diagnostic or error
  - shelfwise_recommendation_duration_seconds{type}

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

System:
  - app_info{version,go_version}

# Usage

	metrics.RecordRecommendation("popular", metrics.OutcomeRanked, elapsed)
	metrics.SetDatasetRows("books_joined_clean", 10000)
*/
package metrics
