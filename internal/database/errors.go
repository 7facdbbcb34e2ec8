// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/shelfwise/internal/logging"
)

var (
	// ErrUnsupportedFormat is returned for files the loader cannot read.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrInvalidDatasetName is returned for names that are not valid identifiers.
	ErrInvalidDatasetName = errors.New("invalid dataset name")

	// ErrDataDirNotFound is returned when the catalog directory does not exist.
	ErrDataDirNotFound = errors.New("data directory not found")
)

// closeWithLog closes a resource and logs any error.
// Use this for cleanup where errors should be acknowledged but not fail the operation.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error.
// Use this in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // best-effort cleanup
	}
}
