// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package mining

import (
	"slices"
	"time"

	"github.com/tomtom215/tagmine/internal/itemset"
)

// FrequentItemset is an itemset together with its support.
type FrequentItemset struct {
	Itemset itemset.Itemset `json:"itemset"`
	Support Support         `json:"support"`
}

// Stats describes the work done by a search.
type Stats struct {
	// NodesVisited counts itemsets whose extensions were explored.
	NodesVisited int64 `json:"nodes_visited"`
	// Pruned counts candidate extensions rejected as infrequent.
	Pruned int64 `json:"pruned"`
	// DeadEnds counts nodes with no frequent extension.
	DeadEnds int64 `json:"dead_ends"`
	// Duration is the wall time of the run.
	Duration time.Duration `json:"duration"`
}

func (s *Stats) add(o Stats) {
	s.NodesVisited += o.NodesVisited
	s.Pruned += o.Pruned
	s.DeadEnds += o.DeadEnds
}

// Result is the outcome of a mining run.
type Result struct {
	// RunID identifies the run in logs and metrics.
	RunID string `json:"run_id"`

	// Fingerprint identifies the mined collection (see itemset.Collection.Fingerprint).
	Fingerprint string `json:"fingerprint"`

	Transactions int       `json:"transactions"`
	MinSupport   float64   `json:"min_support"`
	ItemOrder    ItemOrder `json:"item_order"`

	// Frequent lists every frequent itemset, sorted canonically.
	Frequent []FrequentItemset `json:"frequent"`

	// Maximal lists the frequent itemsets with no frequent proper superset,
	// sorted canonically.
	Maximal []FrequentItemset `json:"maximal"`

	// Empty is set when the collection has no transactions.
	Empty bool `json:"empty"`

	// Truncated is set when the context ended before the search completed.
	// Frequent then holds only what had been found, and Maximal is computed
	// over that partial collection.
	Truncated bool `json:"truncated"`

	Stats     Stats     `json:"stats"`
	StartedAt time.Time `json:"started_at"`
}

// MaximalItemsets returns the maximal itemsets without their supports.
func (r *Result) MaximalItemsets() []itemset.Itemset {
	if r == nil {
		return nil
	}
	out := make([]itemset.Itemset, len(r.Maximal))
	for i, m := range r.Maximal {
		out[i] = m.Itemset
	}
	return out
}

// Lookup returns the support of set if it was found frequent in this run.
func (r *Result) Lookup(set itemset.Itemset) (Support, bool) {
	if r == nil {
		return Support{}, false
	}
	i, found := slices.BinarySearchFunc(r.Frequent, set, func(f FrequentItemset, s itemset.Itemset) int {
		return itemset.Compare(f.Itemset, s)
	})
	if !found {
		return Support{}, false
	}
	return r.Frequent[i].Support, true
}

// sortRecords orders records canonically by itemset.
func sortRecords(recs []FrequentItemset) {
	slices.SortFunc(recs, func(a, b FrequentItemset) int {
		return itemset.Compare(a.Itemset, b.Itemset)
	})
}
