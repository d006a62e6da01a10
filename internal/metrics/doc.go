// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

/*
Package metrics provides Prometheus instrumentation for Tagmine.

Collectors are registered on the default registry through promauto. Tagmine
has no HTTP surface, so the registry is exported with WriteTextfile for the
node exporter textfile collector:

	tagmine mine --dataset catalog.json --metrics-textfile /var/lib/node_exporter/tagmine.prom

# Available Metrics

Mining:
  - tagmine_mining_runs_total: Runs by result (counter)
    Labels: result (complete, truncated, error)
  - tagmine_mining_duration_seconds: Run wall time (histogram)
  - tagmine_mining_transactions: Transactions in the last run (gauge)
  - tagmine_frequent_itemsets: Frequent itemsets in the last run (gauge)
  - tagmine_maximal_itemsets: Maximal itemsets in the last run (gauge)
  - tagmine_search_nodes_visited_total, tagmine_search_pruned_total,
    tagmine_search_dead_ends_total: Search statistics (counters)
  - tagmine_published_result_version: Version served by the watch service (gauge)

Result cache:
  - tagmine_result_cache_hits_total, tagmine_result_cache_misses_total (counters)
  - tagmine_result_cache_entries (gauge)

Dataset:
  - tagmine_dataset_loads_total: Loads by result (counter)
    Labels: result (ok, error)

Recommendations:
  - tagmine_recommend_requests_total: Requests by outcome (counter)
    Labels: outcome (ranked, no_profile, no_candidates, no_affinity, error, canceled)
  - tagmine_recommend_duration_seconds: Request latency (histogram)
  - tagmine_recommend_emitted_entities: Entities per response (histogram)

# Testing

Collectors are package globals, so tests compare deltas read with
testutil.ToFloat64 rather than absolute values.
*/
package metrics
