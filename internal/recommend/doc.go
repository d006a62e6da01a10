// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

// Package recommend turns maximal frequent itemsets into per-user
// recommendations.
//
// # Architecture
//
// A request carries the entities a user has watched. Their tags are merged
// into a profile, and every maximal itemset is scored by how many items it
// shares with that profile. Itemsets with no shared item are dropped; the
// rest are ranked by score, with canonical itemset order breaking ties.
//
// Walking the ranking, the engine asks the Catalog for entities matching each
// itemset, removes anything the user has watched, and keeps the highest
// quality matches:
//
//   - Superset mode: entity tags contain every item of the itemset
//   - Exact mode: entity tags equal the itemset
//
// At most Config.MaxRecsPerItemset entities are kept per itemset and at most
// Config.MaxTotalRecommendations across the response. An itemset with no
// eligible match is skipped and does not count toward either cap.
//
// # Outcomes
//
// Every response carries an Outcome: Ranked, NoProfile (the watched list
// produced no tags), NoCandidates (no maximal itemsets were supplied) or
// NoAffinity (no itemset shares an item with the profile).
//
// # Identity Keys
//
// Watched entities and catalog entities are compared by identity key, which
// is the entity key or title after NFKC normalization, trimming and lower
// casing. Keys need not be unique: a remake and its original share one, and
// watching either excludes both.
//
// # Usage
//
//	catalog, err := recommend.NewMemoryCatalog(entities)
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), catalog, logger)
//
//	resp, err := engine.RecommendFromResult(ctx, miningResult, recommend.Request{
//	    Watched: watched,
//	})
//
// # Thread Safety
//
// The engine and MemoryCatalog are safe for concurrent use. Neither mutates
// state on the request path apart from the engine's counters.
package recommend
