// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/shelfwise/internal/models"
	"github.com/tomtom215/shelfwise/internal/recommend"
	"github.com/tomtom215/shelfwise/internal/validation"
)

// Error codes for API responses.
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeUnknownRequestType  = "UNKNOWN_REQUEST_TYPE"
	ErrCodeUnknownMethod       = "UNKNOWN_METHOD"
	ErrCodeMissingInteractions = "MISSING_INTERACTIONS"
	ErrCodeMissingJoinKey      = "MISSING_JOIN_KEY"
	ErrCodeMissingDataset      = "MISSING_DATASET"
	ErrCodeMissingColumn       = "MISSING_COLUMN"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimited         = "RATE_LIMIT_EXCEEDED"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
)

// errorMapping pairs a sentinel with its HTTP status and code. Order
// matters: ErrMissingInteractions may wrap ErrMissingDataset.
var errorMappings = []struct {
	target error
	status int
	code   string
}{
	{recommend.ErrUnknownRequestType, http.StatusBadRequest, ErrCodeUnknownRequestType},
	{recommend.ErrUnknownMethod, http.StatusBadRequest, ErrCodeUnknownMethod},
	{recommend.ErrMissingInteractions, http.StatusBadRequest, ErrCodeMissingInteractions},
	{recommend.ErrMissingJoinKey, http.StatusInternalServerError, ErrCodeMissingJoinKey},
	{recommend.ErrMissingDataset, http.StatusInternalServerError, ErrCodeMissingDataset},
	{recommend.ErrMissingColumn, http.StatusInternalServerError, ErrCodeMissingColumn},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, ErrCodeTimeout},
	{context.Canceled, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
}

// toAPIError maps a recommendation error to an HTTP status and error body.
// Request problems are client errors; a catalog that lacks what a ranking
// needs is a server misconfiguration.
func toAPIError(err error) (int, *models.APIError) {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		apiErr := verr.ToAPIError()
		return http.StatusBadRequest, &models.APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		}
	}
	if errors.Is(err, recommend.ErrInvalidRequest) {
		return http.StatusBadRequest, &models.APIError{Code: ErrCodeValidation, Message: err.Error()}
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, &models.APIError{Code: m.code, Message: err.Error()}
		}
	}

	return http.StatusInternalServerError, &models.APIError{
		Code:    ErrCodeInternal,
		Message: "Failed to generate recommendations",
	}
}
