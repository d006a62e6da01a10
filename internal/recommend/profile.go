// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package recommend

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tomtom215/tagmine/internal/itemset"
)

// Attribute names used to derive tags from entity metadata.
const (
	AttrGenre    = "genre"
	AttrDirector = "director"
	AttrStar     = "star"
)

// DefaultTagAttributes lists the attributes that contribute tags.
var DefaultTagAttributes = []string{AttrGenre, AttrDirector, AttrStar}

// NormalizeKey folds an identity key so that visually identical titles
// compare equal: NFKC normalization, surrounding space removed, lower case.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

// TagsFromAttributes collects the trimmed, non-empty values of the named
// attributes into an itemset.
func TagsFromAttributes(attrs map[string][]string, names ...string) itemset.Itemset {
	if len(names) == 0 {
		names = DefaultTagAttributes
	}
	var items []string
	for _, name := range names {
		for _, v := range attrs[name] {
			if v = strings.TrimSpace(v); v != "" {
				items = append(items, v)
			}
		}
	}
	// Blank values were dropped above, so New cannot fail.
	set, _ := itemset.New(items...)
	return set
}

// ProfileFromEntities returns the union of the entities' tags.
func ProfileFromEntities(entities []Entity) itemset.Itemset {
	var profile itemset.Itemset
	for _, e := range entities {
		profile = profile.Union(e.Tags)
	}
	return profile
}

// ScoreItemsets scores every set by its overlap with profile, drops zero
// scores and ranks the rest by score descending. Equal scores keep canonical
// itemset order.
func ScoreItemsets(profile itemset.Itemset, sets []itemset.Itemset) []ScoredItemset {
	scored := make([]ScoredItemset, 0, len(sets))
	for _, s := range sets {
		if n := profile.OverlapCount(s); n > 0 {
			scored = append(scored, ScoredItemset{Itemset: s, Score: n})
		}
	}
	slices.SortFunc(scored, func(a, b ScoredItemset) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return itemset.Compare(a.Itemset, b.Itemset)
	})
	return scored
}
