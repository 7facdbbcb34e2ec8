// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/shelfwise/internal/frame"
	"github.com/tomtom215/shelfwise/internal/metrics"
	"github.com/tomtom215/shelfwise/internal/recommend"
)

// Format is a dataset file format readable by DuckDB.
type Format string

const (
	FormatParquet Format = "parquet"
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
)

// formatPriority decides which file wins when two share a stem.
var formatPriority = map[Format]int{
	FormatParquet: 0,
	FormatCSV:     1,
	FormatJSON:    2,
}

// readFunctions maps a format to the DuckDB table function that reads it.
var readFunctions = map[Format]string{
	FormatParquet: "read_parquet",
	FormatCSV:     "read_csv_auto",
	FormatJSON:    "read_json_auto",
}

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return FormatParquet, true
	case ".csv":
		return FormatCSV, true
	case ".json", ".ndjson", ".jsonl":
		return FormatJSON, true
	default:
		return "", false
	}
}

// datasetFile is one candidate file for a dataset name.
type datasetFile struct {
	name   string
	path   string
	format Format
}

// LoadCatalog reads every supported file in dir into a dataset named by the
// file stem. When several files share a stem the parquet file is preferred,
// then csv, then json; the others are skipped with a warning. Subdirectories
// are not scanned.
func (db *DB) LoadCatalog(ctx context.Context, dir string) (recommend.Datasets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataDirNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read data directory %s: %w", dir, err)
	}

	files := db.selectFiles(dir, entries)
	catalog := make(recommend.Datasets, len(files))
	start := time.Now()

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		table, err := db.LoadTable(ctx, f.name, f.path)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", f.name, err)
		}
		catalog[f.name] = table
	}

	metrics.DatasetsLoaded.Set(float64(len(catalog)))
	if _, ok := catalog[recommend.DatasetBooks]; !ok {
		db.logger.Warn().
			Str("dir", dir).
			Str("dataset", recommend.DatasetBooks).
			Msg("Catalog has no book table; rankings will fail until it is provided")
	}
	db.logger.Info().
		Str("dir", dir).
		Int("datasets", len(catalog)).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")

	return catalog, nil
}

// selectFiles picks one file per stem, ordered by dataset name.
func (db *DB) selectFiles(dir string, entries []os.DirEntry) []datasetFile {
	chosen := make(map[string]datasetFile)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		format, ok := FormatOf(entry.Name())
		if !ok {
			continue
		}
		candidate := datasetFile{
			name:   strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			path:   filepath.Join(dir, entry.Name()),
			format: format,
		}

		current, exists := chosen[candidate.name]
		if !exists {
			chosen[candidate.name] = candidate
			continue
		}
		keep, skip := current, candidate
		if formatPriority[candidate.format] < formatPriority[current.format] {
			keep, skip = candidate, current
		}
		chosen[candidate.name] = keep
		db.logger.Warn().
			Str("dataset", candidate.name).
			Str("using", keep.path).
			Str("skipped", skip.path).
			Msg("Duplicate dataset name")
	}

	files := make([]datasetFile, 0, len(chosen))
	for _, f := range chosen {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })
	return files
}

// LoadTable materializes the file at path as a DuckDB table called name and
// returns its contents.
func (db *DB) LoadTable(ctx context.Context, name, path string) (*frame.Table, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty name for %s", ErrInvalidDatasetName, path)
	}
	format, ok := FormatOf(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	create := fmt.Sprintf("CREATE OR REPLACE TABLE %s AS SELECT * FROM %s(%s)",
		quoteIdent(name), readFunctions[format], quoteLiteral(path))
	_, err := db.conn.ExecContext(ctx, create)
	metrics.RecordDBQuery("LOAD", name, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	table, err := db.Query(ctx, "SELECT * FROM "+quoteIdent(name))
	if err != nil {
		return nil, err
	}

	metrics.SetDatasetRows(name, table.Len())
	db.logger.Debug().
		Str("dataset", name).
		Str("format", string(format)).
		Int("rows", table.Len()).
		Strs("columns", table.Columns()).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")

	return table, nil
}

// Query runs a query and materializes the result set as a table. Column
// values keep the driver's Go types (int64, float64, string, time.Time, ...).
func (db *DB) Query(ctx context.Context, query string, args ...any) (*frame.Table, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		metrics.RecordDBQuery("SELECT", "query", time.Since(start), err)
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer closeWithLog(rows, "rows")

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var out []frame.Row
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(frame.Row, len(columns))
		for i, c := range columns {
			row[c] = values[i]
		}
		out = append(out, row)
	}
	err = rows.Err()
	metrics.RecordDBQuery("SELECT", "query", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return frame.New(columns, out...), nil
}

// quoteIdent quotes a SQL identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteLiteral quotes a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
