// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package database loads the Goodreads dataset extracts through DuckDB.
//
// DuckDB reads parquet, csv and json files natively, so the loader is a thin
// layer: each file becomes a DuckDB table named by its stem and is then
// materialized as a frame.Table for the ranking code.
//
// # Usage
//
//	db, err := database.New(&cfg.Data)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	catalog, err := db.LoadCatalog(ctx, cfg.Data.Dir)
//
// # Files
//
//   - database.go: connection lifecycle and pool tuning
//   - loader.go: directory scan, per-file load and generic Query
//   - errors.go: sentinel errors and close helpers
//
// # Format Priority
//
// When several files share a stem (books.parquet, books.csv) the parquet file
// wins, then csv, then json. Skipped files are logged.
//
// # Metrics
//
// Loads and queries are recorded in duckdb_query_duration_seconds; row counts
// are published as shelfwise_dataset_rows.
package database
