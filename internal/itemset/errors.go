// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package itemset

import "errors"

// ErrMalformedItemset indicates an itemset or transaction contained an empty token.
var ErrMalformedItemset = errors.New("itemset: items must be non-empty tokens")
