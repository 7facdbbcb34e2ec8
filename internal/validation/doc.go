// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is created with WithRequiredStructEnabled
// and reports fields by their json names, so error messages use the same
// names clients send ("n must be at least 1").
//
// # Custom Validators
//
//   - identifier: dataset and column names; letters, digits and underscores only
//
// # Example
//
//	type RequestSpec struct {
//	    Type string `json:"type" validate:"required,max=32"`
//	    N    *int   `json:"n,omitempty" validate:"omitempty,min=1"`
//	}
//
//	if err := validation.ValidateStruct(&spec); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// ValidateStruct returns a *RequestValidationError, which implements error and
// can be wrapped and recovered with errors.As.
package validation
