// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package itemset

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Itemset is an immutable, duplicate-free set of items in canonical order.
// The zero value is the empty set.
type Itemset struct {
	items []string
}

// New builds an Itemset from the given items, dropping duplicates.
// Returns ErrMalformedItemset if any item is the empty string.
func New(items ...string) (Itemset, error) {
	if len(items) == 0 {
		return Itemset{}, nil
	}

	sorted := make([]string, len(items))
	copy(sorted, items)

	for _, it := range sorted {
		if it == "" {
			return Itemset{}, ErrMalformedItemset
		}
	}

	slices.Sort(sorted)
	return Itemset{items: slices.Compact(sorted)}, nil
}

// MustNew is like New but panics on malformed input.
// Intended for tests and static fixtures.
func MustNew(items ...string) Itemset {
	s, err := New(items...)
	if err != nil {
		panic(fmt.Sprintf("itemset.MustNew(%q): %v", items, err))
	}
	return s
}

// fromCanonical wraps an already sorted, duplicate-free slice without copying.
// Callers must not retain or mutate items afterwards.
func fromCanonical(items []string) Itemset {
	return Itemset{items: items}
}

// Len returns the number of items in the set.
func (s Itemset) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the set has no items.
func (s Itemset) IsEmpty() bool {
	return len(s.items) == 0
}

// Items returns a copy of the items in canonical order.
func (s Itemset) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// At returns the i-th item in canonical order.
func (s Itemset) At(i int) string {
	return s.items[i]
}

// Contains reports whether item is a member of the set.
func (s Itemset) Contains(item string) bool {
	_, found := slices.BinarySearch(s.items, item)
	return found
}

// Key returns a stable string usable as a map key. Two itemsets have the same
// key iff they hold the same items. Items are length-prefixed so that no token
// content can collide with the separator.
func (s Itemset) Key() string {
	var b strings.Builder
	for _, it := range s.items {
		b.WriteString(strconv.Itoa(len(it)))
		b.WriteByte(':')
		b.WriteString(it)
	}
	return b.String()
}

// String renders the set as {a, b, c}.
func (s Itemset) String() string {
	return "{" + strings.Join(s.items, ", ") + "}"
}

// Equal reports whether both sets hold exactly the same items.
func (s Itemset) Equal(o Itemset) bool {
	return slices.Equal(s.items, o.items)
}

// IsSubsetOf reports whether every item of s is in o.
// Both slices are sorted, so this is a single merge pass.
func (s Itemset) IsSubsetOf(o Itemset) bool {
	if len(s.items) > len(o.items) {
		return false
	}
	j := 0
	for _, it := range s.items {
		for j < len(o.items) && o.items[j] < it {
			j++
		}
		if j == len(o.items) || o.items[j] != it {
			return false
		}
		j++
	}
	return true
}

// IsProperSubsetOf reports whether s ⊂ o and s != o.
func (s Itemset) IsProperSubsetOf(o Itemset) bool {
	return len(s.items) < len(o.items) && s.IsSubsetOf(o)
}

// Union returns s ∪ o.
func (s Itemset) Union(o Itemset) Itemset {
	out := make([]string, 0, len(s.items)+len(o.items))
	i, j := 0, 0
	for i < len(s.items) && j < len(o.items) {
		switch {
		case s.items[i] < o.items[j]:
			out = append(out, s.items[i])
			i++
		case s.items[i] > o.items[j]:
			out = append(out, o.items[j])
			j++
		default:
			out = append(out, s.items[i])
			i++
			j++
		}
	}
	out = append(out, s.items[i:]...)
	out = append(out, o.items[j:]...)
	return fromCanonical(out)
}

// With returns s ∪ {item}.
func (s Itemset) With(item string) (Itemset, error) {
	if item == "" {
		return Itemset{}, ErrMalformedItemset
	}
	pos, found := slices.BinarySearch(s.items, item)
	if found {
		return s, nil
	}
	out := make([]string, 0, len(s.items)+1)
	out = append(out, s.items[:pos]...)
	out = append(out, item)
	out = append(out, s.items[pos:]...)
	return fromCanonical(out), nil
}

// Intersection returns s ∩ o.
func (s Itemset) Intersection(o Itemset) Itemset {
	out := make([]string, 0, min(len(s.items), len(o.items)))
	i, j := 0, 0
	for i < len(s.items) && j < len(o.items) {
		switch {
		case s.items[i] < o.items[j]:
			i++
		case s.items[i] > o.items[j]:
			j++
		default:
			out = append(out, s.items[i])
			i++
			j++
		}
	}
	return fromCanonical(out)
}

// OverlapCount returns |s ∩ o| without allocating.
func (s Itemset) OverlapCount(o Itemset) int {
	n, i, j := 0, 0, 0
	for i < len(s.items) && j < len(o.items) {
		switch {
		case s.items[i] < o.items[j]:
			i++
		case s.items[i] > o.items[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}
	return n
}

// Compare orders itemsets element-wise by their canonical items; when one is a
// prefix of the other the shorter sorts first. Returns -1, 0 or +1.
func Compare(a, b Itemset) int {
	return slices.Compare(a.items, b.items)
}

// Sort orders sets in place by Compare.
func Sort(sets []Itemset) {
	slices.SortFunc(sets, Compare)
}

// MarshalJSON encodes the set as a JSON array of items in canonical order.
func (s Itemset) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

// UnmarshalJSON decodes a JSON array of items, applying the same validation
// as New.
func (s *Itemset) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := New(raw...)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
