// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package mining

import (
	"cmp"
	"slices"

	"github.com/tomtom215/tagmine/internal/itemset"
)

// FilterMaximal returns the records that have no proper superset among
// records, deduplicated and sorted canonically. It compares every pair and
// is quadratic in len(records).
func FilterMaximal(records []FrequentItemset) []FrequentItemset {
	uniq := dedupe(records)
	out := make([]FrequentItemset, 0, len(uniq))
	for i, a := range uniq {
		maximal := true
		for j, b := range uniq {
			if i != j && a.Itemset.IsProperSubsetOf(b.Itemset) {
				maximal = false
				break
			}
		}
		if maximal {
			out = append(out, a)
		}
	}
	sortRecords(out)
	return out
}

// FilterMaximalIndexed returns the same result as FilterMaximal.
//
// Records are visited largest first. A record is maximal iff no maximal set
// accepted so far contains it, and the accepted sets containing a record are
// found by intersecting the item postings of its items. Any record with a
// proper frequent superset also has a maximal one, and that maximal set is
// strictly larger, so it has already been accepted when the record is seen.
func FilterMaximalIndexed(records []FrequentItemset) []FrequentItemset {
	uniq := dedupe(records)
	slices.SortFunc(uniq, func(a, b FrequentItemset) int {
		if c := cmp.Compare(b.Itemset.Len(), a.Itemset.Len()); c != 0 {
			return c
		}
		return itemset.Compare(a.Itemset, b.Itemset)
	})

	var accepted []FrequentItemset
	postings := make(map[string]TIDList)
	for _, rec := range uniq {
		if covered(rec.Itemset, postings, len(accepted)) {
			continue
		}
		idx := len(accepted)
		accepted = append(accepted, rec)
		for i := 0; i < rec.Itemset.Len(); i++ {
			it := rec.Itemset.At(i)
			postings[it] = append(postings[it], idx)
		}
	}

	if accepted == nil {
		accepted = []FrequentItemset{}
	}
	sortRecords(accepted)
	return accepted
}

// covered reports whether some accepted set contains every item of set.
// Equal sets were removed by dedupe and accepted sets are at least as large,
// so containment here is always proper.
func covered(set itemset.Itemset, postings map[string]TIDList, accepted int) bool {
	if set.IsEmpty() {
		return accepted > 0
	}
	cand := postings[set.At(0)]
	for i := 1; i < set.Len() && len(cand) > 0; i++ {
		cand = Intersect(cand, postings[set.At(i)])
	}
	return len(cand) > 0
}

// dedupe drops records whose itemset was already seen, keeping the first.
func dedupe(records []FrequentItemset) []FrequentItemset {
	seen := make(map[string]struct{}, len(records))
	out := make([]FrequentItemset, 0, len(records))
	for _, r := range records {
		k := r.Itemset.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}
