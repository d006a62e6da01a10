// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package dataset

import "errors"

var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .json, .csv and .tsv.
	ErrUnsupportedFormat = errors.New("dataset: unsupported file format")

	// ErrMissingColumn is returned when a delimited file has no title column.
	ErrMissingColumn = errors.New("dataset: missing required column")

	// ErrInvalidRow is returned for a delimited row whose numeric fields do
	// not parse.
	ErrInvalidRow = errors.New("dataset: invalid row")
)
