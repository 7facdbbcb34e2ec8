// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package frame

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are tried in order when parsing string timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RubyDate, // Goodreads: "Mon Jan 02 15:04:05 -0700 2006"
	time.UnixDate,
	time.RFC1123Z,
	time.RFC1123,
}

// IsMissing reports whether v represents an absent value (nil or NaN).
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	case *time.Time:
		return x == nil
	default:
		return false
	}
}

// Float converts a numeric cell to float64.
// Numeric strings are parsed; NaN and non-numeric values report ok=false.
//
//nolint:gocyclo // type switch over all scalar kinds DuckDB can return
func Float(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case *big.Int:
		if x == nil {
			return 0, false
		}
		f, _ = new(big.Float).SetInt(x).Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case interface{ Float64() float64 }:
		// DuckDB DECIMAL values
		f = x.Float64()
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int converts a numeric cell to int64, truncating fractional values.
func Int(v any) (int64, bool) {
	if i, ok := v.(int64); ok {
		return i, true
	}
	f, ok := Float(v)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// String converts a cell to its canonical string form. Integral floats render
// without a fractional part so identifiers compare equal across int and float
// columns ("123" for both 123 and 123.0).
func String(v any) (string, bool) {
	if IsMissing(v) {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	case time.Time:
		return x.UTC().Format(time.RFC3339), true
	case bool:
		return strconv.FormatBool(x), true
	case *big.Int:
		return x.String(), true
	}
	if f, ok := Float(v); ok {
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return strconv.FormatInt(int64(f), 10), true
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), true
	}
	return fmt.Sprint(v), true
}

// Time converts a cell to a UTC timestamp. Strings are parsed against the
// supported layouts and numbers of any width are read as unix seconds.
// Anything else, including unparseable strings, reports ok=false.
func Time(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return time.Time{}, false
		}
		return x.UTC(), true
	case *time.Time:
		if x == nil || x.IsZero() {
			return time.Time{}, false
		}
		return x.UTC(), true
	case string:
		return ParseTimestamp(x)
	default:
		secs, ok := Float(v)
		if !ok {
			return time.Time{}, false
		}
		whole := math.Floor(secs)
		return time.Unix(int64(whole), int64(math.Round((secs-whole)*1e9))).UTC(), true
	}
}

// ParseTimestamp parses s using the supported layouts.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}
