// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package itemset

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Collection is an ordered, read-only sequence of transactions.
// A transaction is identified by its index in the collection.
type Collection struct {
	txs []Itemset
}

// NewCollection wraps the given transactions. The slice is copied; the
// itemsets themselves are immutable and shared.
func NewCollection(txs ...Itemset) *Collection {
	owned := make([]Itemset, len(txs))
	copy(owned, txs)
	return &Collection{txs: owned}
}

// FromStrings builds a Collection from raw token lists, validating each one.
// The error names the offending transaction index.
func FromStrings(rows [][]string) (*Collection, error) {
	txs := make([]Itemset, len(rows))
	for i, row := range rows {
		s, err := New(row...)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txs[i] = s
	}
	return &Collection{txs: txs}, nil
}

// Len returns the number of transactions.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.txs)
}

// At returns the transaction at index i.
func (c *Collection) At(i int) Itemset {
	return c.txs[i]
}

// Transactions returns a copy of the transaction slice.
func (c *Collection) Transactions() []Itemset {
	if c == nil {
		return nil
	}
	out := make([]Itemset, len(c.txs))
	copy(out, c.txs)
	return out
}

// Universe returns every distinct item that appears in at least one
// transaction, in canonical order.
func (c *Collection) Universe() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, tx := range c.txs {
		for _, it := range tx.items {
			seen[it] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for it := range seen {
		out = append(out, it)
	}
	slices.Sort(out)
	return out
}

// Fingerprint returns a hash of the collection's contents in order.
// Collections with identical transactions at identical positions share a
// fingerprint; it is used to key cached mining results.
func (c *Collection) Fingerprint() string {
	d := xxhash.New()
	_, _ = d.WriteString(strconv.Itoa(c.Len()))
	if c != nil {
		for _, tx := range c.txs {
			_, _ = d.WriteString("|")
			_, _ = d.WriteString(tx.Key())
		}
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
