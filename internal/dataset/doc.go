// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

// Package dataset reads catalogs and watched lists from JSON, CSV and TSV
// files.
//
// Entities without explicit tags get them from their genre, director and
// star attributes. Transactions default to the catalog tag sets in file
// order; a JSON dataset may supply its own "transactions" array instead.
// Parsing and tag extraction live here so the mining and recommendation
// packages only ever see validated itemsets.
package dataset
