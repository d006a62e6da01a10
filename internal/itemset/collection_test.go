// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package itemset

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestFromStrings(t *testing.T) {
	t.Parallel()

	c, err := FromStrings([][]string{
		{"A", "B"},
		{},
		{"C", "A", "C"},
	})
	if err != nil {
		t.Fatalf("FromStrings: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	if !c.At(1).IsEmpty() {
		t.Errorf("At(1) = %v, want empty transaction", c.At(1))
	}
	if !slices.Equal(c.At(2).Items(), []string{"A", "C"}) {
		t.Errorf("At(2) = %v", c.At(2))
	}
	if !slices.Equal(c.Universe(), []string{"A", "B", "C"}) {
		t.Errorf("Universe = %q", c.Universe())
	}
}

func TestFromStrings_MalformedNamesIndex(t *testing.T) {
	t.Parallel()

	_, err := FromStrings([][]string{{"A"}, {"B", ""}})
	if !errors.Is(err, ErrMalformedItemset) {
		t.Fatalf("error = %v, want ErrMalformedItemset", err)
	}
	if !strings.Contains(err.Error(), "transaction 1") {
		t.Errorf("error %q does not name the transaction", err)
	}
}

func TestCollection_NilAndEmpty(t *testing.T) {
	t.Parallel()

	var nilColl *Collection
	if nilColl.Len() != 0 {
		t.Error("nil collection Len != 0")
	}
	if nilColl.Universe() != nil {
		t.Error("nil collection Universe != nil")
	}
	if nilColl.Fingerprint() != NewCollection().Fingerprint() {
		t.Error("nil and empty collections should share a fingerprint")
	}
}

func TestCollection_Fingerprint(t *testing.T) {
	t.Parallel()

	a := NewCollection(MustNew("A", "B"), MustNew("C"))
	b := NewCollection(MustNew("B", "A"), MustNew("C"))
	reordered := NewCollection(MustNew("C"), MustNew("A", "B"))
	split := NewCollection(MustNew("A"), MustNew("B", "C"))

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal collections have different fingerprints")
	}
	if a.Fingerprint() == reordered.Fingerprint() {
		t.Error("transaction order should change the fingerprint")
	}
	if a.Fingerprint() == split.Fingerprint() {
		t.Error("different transaction boundaries should change the fingerprint")
	}
}

func TestNewCollection_CopiesSlice(t *testing.T) {
	t.Parallel()

	txs := []Itemset{MustNew("A")}
	c := NewCollection(txs...)
	txs[0] = MustNew("Z")

	if !c.At(0).Equal(MustNew("A")) {
		t.Errorf("collection aliased caller slice: %v", c.At(0))
	}
}
