// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package middleware provides chi-compatible HTTP middleware for the API.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - AccessLog: one zerolog line per request, leveled by status class
  - PrometheusMetrics: request count, latency and in-flight gauges labeled
    by chi route pattern

All middleware has the func(http.Handler) http.Handler shape and is applied
with chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

RequestID must run before AccessLog so log lines carry request_id.
*/
package middleware
