// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package mining

import (
	"context"
	"slices"

	"github.com/tomtom215/tagmine/internal/itemset"
)

// search holds the read-only state shared by every branch of one run.
type search struct {
	items      []string  // rank -> item, frequent singletons only
	lists      []TIDList // rank -> membership list
	total      int
	minSupport float64

	// scan is set when support is counted by full passes instead of
	// intersections.
	scan *ScanCounter
}

// node is a frequent itemset in the search tree. ranks is strictly
// increasing; its last entry bounds which items may extend it.
type node struct {
	ranks []int
	tids  TIDList
}

// branch accumulates everything found under one root. Each root owns its
// branch exclusively.
type branch struct {
	records   []FrequentItemset
	stats     Stats
	truncated bool
}

func (s *search) itemsetOf(ranks []int) itemset.Itemset {
	items := make([]string, len(ranks))
	for i, r := range ranks {
		items[i] = s.items[r]
	}
	return itemset.MustNew(items...)
}

// root searches the subtree of the singleton at rank r. The singleton itself
// is recorded first.
func (s *search) root(ctx context.Context, r int) branch {
	var acc branch
	if ctx.Err() != nil {
		acc.truncated = true
		return acc
	}
	n := node{ranks: []int{r}, tids: s.lists[r]}
	set := itemset.MustNew(s.items[r])
	sup := NewSupport(len(n.tids), s.total)
	if s.scan != nil {
		sup = s.scan.Support(set)
	}
	acc.records = append(acc.records, FrequentItemset{Itemset: set, Support: sup})
	s.extend(ctx, n, &acc)
	return acc
}

// extend records every frequent extension of n and recurses into it.
func (s *search) extend(ctx context.Context, n node, acc *branch) {
	if ctx.Err() != nil {
		acc.truncated = true
		return
	}
	acc.stats.NodesVisited++

	extended := false
	last := n.ranks[len(n.ranks)-1]
	for r := last + 1; r < len(s.items); r++ {
		child := node{ranks: append(slices.Clip(n.ranks), r)}

		var (
			sup Support
			set itemset.Itemset
		)
		if s.scan != nil {
			set = s.itemsetOf(child.ranks)
			sup = s.scan.Support(set)
		} else {
			child.tids = Intersect(n.tids, s.lists[r])
			sup = NewSupport(len(child.tids), s.total)
		}
		if !sup.Meets(s.minSupport) {
			acc.stats.Pruned++
			continue
		}
		if s.scan == nil {
			set = s.itemsetOf(child.ranks)
		}

		extended = true
		acc.records = append(acc.records, FrequentItemset{Itemset: set, Support: sup})
		s.extend(ctx, child, acc)
		if acc.truncated {
			return
		}
	}
	if !extended {
		acc.stats.DeadEnds++
	}
}
