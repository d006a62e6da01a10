// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tomtom215/tagmine/internal/recommend"
)

// DefaultColumns is the column order assumed for delimited files without a
// header row.
var DefaultColumns = []string{"title", "year", "rating_imdb", "genre", "language", "star", "director"}

// Column names with a fixed meaning. Every other column is an attribute.
const (
	colKey     = "key"
	colTitle   = "title"
	colYear    = "year"
	colRating  = "rating_imdb"
	colQuality = "quality"
)

var knownColumns = append([]string{colKey, colQuality}, DefaultColumns...)

// DecodeDelimited reads a CSV or TSV catalog. A first row naming any known
// column is a header and must include "title"; otherwise DefaultColumns
// apply.
//
// List cells may be bracketed ("['Drama', 'Crime']") or a single value.
// Transactions are always the catalog tag sets.
func DecodeDelimited(r io.Reader, comma rune, opts Options) (*Dataset, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return fromCatalog(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := DefaultColumns
	pending := first
	if isHeader(first) {
		columns = normalizeHeader(first)
		pending = nil
	}
	if !contains(columns, colTitle) {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, colTitle)
	}

	var catalog []recommend.Entity
	line := 1
	if pending != nil {
		e, err := parseRow(columns, pending)
		if err != nil {
			return nil, fmt.Errorf("%w at line %d: %v", ErrInvalidRow, line, err)
		}
		catalog = append(catalog, e)
	}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		e, err := parseRow(columns, row)
		if err != nil {
			return nil, fmt.Errorf("%w at line %d: %v", ErrInvalidRow, line, err)
		}
		catalog = append(catalog, e)
	}

	resolveTags(catalog, opts)
	return fromCatalog(catalog), nil
}

func isHeader(row []string) bool {
	for _, cell := range normalizeHeader(row) {
		if contains(knownColumns, cell) {
			return true
		}
	}
	return false
}

func normalizeHeader(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.ToLower(strings.TrimSpace(cell))
	}
	return out
}

func contains(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

func parseRow(columns, row []string) (recommend.Entity, error) {
	var e recommend.Entity
	for i, name := range columns {
		if i >= len(row) {
			break
		}
		cell := strings.TrimSpace(row[i])
		switch name {
		case colKey:
			e.Key = cell
		case colTitle:
			e.Title = cell
		case colYear:
			year, err := parseYear(cell)
			if err != nil {
				return e, err
			}
			e.Year = year
		case colRating, colQuality:
			if cell == "" {
				continue
			}
			q, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return e, fmt.Errorf("%s %q: %w", name, cell, err)
			}
			e.Quality = q
		default:
			values := ParseListCell(cell)
			if len(values) == 0 {
				continue
			}
			if e.Attributes == nil {
				e.Attributes = make(map[string][]string)
			}
			e.Attributes[name] = append(e.Attributes[name], values...)
		}
	}
	return e, nil
}

// parseYear accepts "1994" and the float form "1994.0" some exports use.
func parseYear(cell string) (int, error) {
	if cell == "" {
		return 0, nil
	}
	if y, err := strconv.Atoi(cell); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("year %q is not an integer", cell)
	}
	return int(f), nil
}

// ParseListCell splits a list cell. "['Drama', 'Crime']" yields both values
// and a bare value yields itself; quotes and blanks are dropped.
func ParseListCell(cell string) []string {
	cell = strings.TrimSpace(cell)
	if strings.HasPrefix(cell, "[") && strings.HasSuffix(cell, "]") {
		cell = cell[1 : len(cell)-1]
		var out []string
		for _, part := range strings.Split(cell, ",") {
			if v := stripQuotes(part); v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	if v := stripQuotes(cell); v != "" {
		return []string{v}
	}
	return nil
}

func stripQuotes(s string) string {
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, `"`, "")
	return strings.TrimSpace(s)
}
