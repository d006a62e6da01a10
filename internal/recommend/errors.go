// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package recommend

import "errors"

var (
	// ErrInvalidMatchingMode indicates a matching mode other than exact or superset.
	ErrInvalidMatchingMode = errors.New("recommend: invalid matching mode")
	// ErrNilCatalog indicates the engine was built without a catalog.
	ErrNilCatalog = errors.New("recommend: catalog is required")
)
