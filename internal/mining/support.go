// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package mining

import (
	"github.com/tomtom215/tagmine/internal/itemset"
)

// Support is the number of transactions containing an itemset and that
// number as a fraction of the collection size.
type Support struct {
	Count int     `json:"count"`
	Ratio float64 `json:"ratio"`
}

// NewSupport builds a Support from a raw count. The ratio of an empty
// collection is 0.
func NewSupport(count, total int) Support {
	if total == 0 {
		return Support{}
	}
	return Support{Count: count, Ratio: float64(count) / float64(total)}
}

// Meets reports whether the support ratio reaches minSupport.
func (s Support) Meets(minSupport float64) bool {
	return s.Ratio >= minSupport
}

// Counter computes the support of arbitrary itemsets over a fixed collection.
type Counter interface {
	Support(set itemset.Itemset) Support
	Total() int
}

// TIDList is a sorted list of transaction indices.
type TIDList []int

// Intersect returns the indices present in both lists. Neither input is
// modified.
func Intersect(a, b TIDList) TIDList {
	if len(a) > len(b) {
		a, b = b, a
	}
	out := make(TIDList, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// TIDCounter answers support queries by intersecting per-item membership
// lists.
type TIDCounter struct {
	total int
	lists map[string]TIDList
}

// NewTIDCounter indexes every item of c.
func NewTIDCounter(c *itemset.Collection) *TIDCounter {
	lists := make(map[string]TIDList)
	for i := 0; i < c.Len(); i++ {
		tx := c.At(i)
		for j := 0; j < tx.Len(); j++ {
			it := tx.At(j)
			lists[it] = append(lists[it], i)
		}
	}
	return &TIDCounter{total: c.Len(), lists: lists}
}

// List returns the membership list of item. Callers must not modify it.
func (t *TIDCounter) List(item string) TIDList {
	return t.lists[item]
}

// Items returns the number of distinct items indexed.
func (t *TIDCounter) Items() int {
	return len(t.lists)
}

// Total returns the collection size.
func (t *TIDCounter) Total() int {
	return t.total
}

// Support implements Counter. The empty itemset is contained in every
// transaction.
func (t *TIDCounter) Support(set itemset.Itemset) Support {
	if set.IsEmpty() {
		return NewSupport(t.total, t.total)
	}
	acc := t.lists[set.At(0)]
	for i := 1; i < set.Len() && len(acc) > 0; i++ {
		acc = Intersect(acc, t.lists[set.At(i)])
	}
	return NewSupport(len(acc), t.total)
}

// ScanCounter answers support queries with a full pass over the collection.
type ScanCounter struct {
	coll *itemset.Collection
}

// NewScanCounter wraps c.
func NewScanCounter(c *itemset.Collection) *ScanCounter {
	return &ScanCounter{coll: c}
}

// Total returns the collection size.
func (s *ScanCounter) Total() int {
	return s.coll.Len()
}

// Support implements Counter.
func (s *ScanCounter) Support(set itemset.Itemset) Support {
	n := 0
	for i := 0; i < s.coll.Len(); i++ {
		if set.IsSubsetOf(s.coll.At(i)) {
			n++
		}
	}
	return NewSupport(n, s.coll.Len())
}

var (
	_ Counter = (*TIDCounter)(nil)
	_ Counter = (*ScanCounter)(nil)
)
