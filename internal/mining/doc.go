// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

// Package mining implements maximal frequent itemset mining over tag
// transactions using an Eclat-style depth-first search.
//
// # Algorithm
//
// Every item that appears in the collection gets a membership list: the sorted
// indices of the transactions containing it. The support of an itemset is the
// size of the intersection of its items' membership lists.
//
// Items are placed in a fixed total order (see ItemOrder). The search starts
// from every frequent singleton and extends a node only with items ranked
// strictly after the last item it already holds, so each itemset is generated
// exactly once. Extensions whose support ratio falls below the threshold are
// pruned together with their whole subtree; support is antimonotone, so no
// superset of an infrequent itemset can be frequent.
//
// A node with no frequent extension is only a candidate for maximality. A
// sibling branch may still produce a strict superset of it, so the final
// maximal set is always decided by FilterMaximal over the complete frequent
// collection.
//
// # Determinism
//
// Results are sorted canonically before they are returned. The same
// transactions, item order and threshold always produce the same frequent and
// maximal sets, regardless of Parallelism.
//
// # Concurrency
//
// Each root subtree accumulates into its own branch value which is handed
// back to the caller and merged by union. With Parallelism > 1 root subtrees
// run on an errgroup; nothing on the hot path takes a lock.
//
// # Deadlines
//
// The context is checked at every recursive entry. When it is done the search
// unwinds, and Mine returns whatever records had already been committed with
// Result.Truncated set.
//
// # Usage
//
//	miner, err := mining.NewMiner(&mining.Config{MinSupport: 0.3}, logger)
//	if err != nil {
//	    return err
//	}
//	res, err := miner.Mine(ctx, coll)
//	for _, m := range res.Maximal {
//	    fmt.Println(m.Itemset, m.Support.Count)
//	}
package mining
