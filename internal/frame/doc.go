// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package frame provides the in-memory tabular representation used for book
// metadata and interaction logs.
//
// Datasets arrive with heterogeneous schemas (two possible identifier columns,
// contributors under either "name" or "authors"), so a Table is column-named
// rather than struct-typed. A Row maps column name to a scalar value; nil and
// NaN are treated as missing.
//
// # Immutability
//
// Every operation returns a new Table and leaves its receiver untouched:
//
//	top := books.
//	    DropMissing("title").
//	    SortDesc(frame.FloatKey("ratings_count")).
//	    Head(10)
//
// This lets rankings run concurrently over the same loaded datasets without
// locking.
package frame
