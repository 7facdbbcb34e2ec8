// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package api serves the recommendation engine over HTTP using the Chi router.

Endpoints:

	GET  /api/v1/health/live      liveness probe
	GET  /api/v1/health/ready     readiness probe (book catalog loaded)
	GET  /api/v1/recommendations  ranking from query parameters
	POST /api/v1/recommendations  ranking from a JSON RequestSpec body
	GET  /api/v1/genres           supported genres and methods
	GET  /api/v1/datasets         loaded datasets with row counts and columns
	GET  /metrics                 Prometheus exposition

Every JSON response uses the models.APIResponse envelope. A ranking that has
nothing to show (unknown genre, empty interaction window) is a 200 whose data
has diagnostic=true and a message. Request problems are 400 with one of
VALIDATION_ERROR, UNKNOWN_REQUEST_TYPE, UNKNOWN_METHOD or
MISSING_INTERACTIONS. A catalog lacking a dataset, column or join key is a
500 since it means the server's data directory is misconfigured.

Example:

	curl 'localhost:8417/api/v1/recommendations?type=genre&genre=poetry&method=bayesian&n=5'

	curl -X POST localhost:8417/api/v1/recommendations \
	    -d '{"type":"interactions","days":30,"n":10}'

Middleware order: request ID, real IP, access log, panic recovery and CORS
apply globally; the rate limiter, Prometheus instrumentation and gzip apply
to /api/v1 data routes. Health probes are exempt from rate limiting.
*/
package api
