// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package mining

import "errors"

var (
	// ErrInvalidSupportThreshold indicates min_support is outside (0, 1].
	ErrInvalidSupportThreshold = errors.New("mining: min support must be in (0, 1]")
	// ErrUnknownItemOrder indicates an unrecognized item order name.
	ErrUnknownItemOrder = errors.New("mining: unknown item order")
	// ErrUnknownStrategy indicates an unrecognized support or maximality strategy.
	ErrUnknownStrategy = errors.New("mining: unknown strategy")
)
