// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

// Package validation wraps go-playground/validator with a shared instance and
// readable messages.
//
// Field names come from `koanf` struct tags, so a failed rule on the
// configuration struct reads like
//
//	mining.min_support must be less than or equal to 1
//
// ValidateStruct returns a concrete *StructError. Compare it to nil before
// converting it to error to avoid a non-nil interface holding a nil pointer.
package validation
