// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

// Package itemset provides the canonical set types shared by the miner and the
// recommender.
//
// # Items and Itemsets
//
// An item is an opaque, non-empty string token such as a genre, a director or a
// performer name. An Itemset is an immutable, duplicate-free set of items kept
// in canonical (byte-wise lexicographic) order, so that two itemsets holding
// the same items always compare equal and produce the same Key.
//
//	s, err := itemset.New("Drama", "Crime", "Drama")
//	// s.Items() == []string{"Crime", "Drama"}
//
// # Transactions
//
// A Collection is the ordered, read-only sequence of transactions a mining run
// operates on. Transactions are identified by their position, which is what
// membership lists in the mining package index into.
//
// # Validation
//
// Constructors fail fast with ErrMalformedItemset when handed an empty token.
// The package never trims, case-folds or otherwise coerces tokens; that is the
// job of whatever ingested the data.
package itemset
