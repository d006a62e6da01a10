// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package mining

import (
	"cmp"
	"slices"
)

// rankItems returns items arranged in search order. Frequency ties fall back
// to lexicographic order so the ranking is total and stable.
func rankItems(items []string, count func(string) int, order ItemOrder) []string {
	out := slices.Clone(items)
	switch order {
	case OrderFrequencyAsc:
		slices.SortFunc(out, func(a, b string) int {
			if c := cmp.Compare(count(a), count(b)); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
	case OrderFrequencyDesc:
		slices.SortFunc(out, func(a, b string) int {
			if c := cmp.Compare(count(b), count(a)); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
	default:
		slices.Sort(out)
	}
	return out
}
