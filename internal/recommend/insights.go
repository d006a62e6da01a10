// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package recommend

import (
	"cmp"
	"slices"

	"github.com/tomtom215/tagmine/internal/itemset"
)

// Insights summarizes the relevant itemsets of a response.
type Insights struct {
	// Composition counts how many relevant itemsets contain each item,
	// ordered by count descending then item.
	Composition []ItemCount `json:"composition"`

	// Affinity pairs each relevant itemset that has unwatched matches with
	// the mean quality of those matches, in ranking order.
	Affinity []AffinityPoint `json:"affinity"`
}

// ItemCount is an item and the number of itemsets containing it.
type ItemCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// AffinityPoint relates an itemset's affinity score to the quality of the
// entities it matches.
type AffinityPoint struct {
	Itemset     itemset.Itemset `json:"itemset"`
	Score       int             `json:"score"`
	Matches     int             `json:"matches"`
	MeanQuality float64         `json:"mean_quality"`
}

func composition(scored []ScoredItemset) []ItemCount {
	counts := make(map[string]int)
	for _, s := range scored {
		for i := 0; i < s.Itemset.Len(); i++ {
			counts[s.Itemset.At(i)]++
		}
	}
	out := make([]ItemCount, 0, len(counts))
	for it, n := range counts {
		out = append(out, ItemCount{Item: it, Count: n})
	}
	slices.SortFunc(out, func(a, b ItemCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Item, b.Item)
	})
	return out
}

func affinityPoint(s ScoredItemset, matches []Entity) AffinityPoint {
	var sum float64
	for _, e := range matches {
		sum += e.Quality
	}
	return AffinityPoint{
		Itemset:     s.Itemset,
		Score:       s.Score,
		Matches:     len(matches),
		MeanQuality: sum / float64(len(matches)),
	}
}
