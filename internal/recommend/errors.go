// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import "errors"

// Configuration errors. They are returned wrapped, so match with errors.Is.
// "No results" outcomes are not errors; see Result.Diagnostic.
var (
	// ErrMissingJoinKey means a book table exposes none of the identifier
	// columns in the join strategy table.
	ErrMissingJoinKey = errors.New("book dataset must contain either 'best_book_id' or 'book_id'")

	// ErrMissingInteractions means trending_interactions was requested for a
	// genre without an interaction log.
	ErrMissingInteractions = errors.New("an interaction log must be provided for the trending_interactions method")

	// ErrUnknownRequestType means the request type is not one of the supported kinds.
	ErrUnknownRequestType = errors.New("unknown request type")

	// ErrUnknownMethod means the genre ranking method is not supported.
	ErrUnknownMethod = errors.New("unknown method, choose from: popular, trending, weighted, bayesian, trending_interactions")

	// ErrMissingDataset means the catalog lacks a dataset a request needs.
	ErrMissingDataset = errors.New("dataset not loaded")

	// ErrMissingColumn means a table lacks a column a ranking reads.
	ErrMissingColumn = errors.New("required column missing")

	// ErrInvalidRequest means a wire request failed validation.
	ErrInvalidRequest = errors.New("invalid recommendation request")
)
