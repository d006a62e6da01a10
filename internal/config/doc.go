// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

/*
Package config loads Tagmine configuration with koanf.

# Configuration Sources

Sources are layered, later ones winning:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: the path given to Load, else TAGMINE_CONFIG, else the
    first of DefaultConfigPaths that exists
 3. Environment variables, through an explicit name mapping
 4. Overrides passed in LoadOptions (command-line flags)

# Example YAML

	mining:
	  min_support: 0.05
	  item_order: frequency_asc
	  parallelism: 4
	  run_timeout: 30s
	recommend:
	  matching_mode: exact
	  max_total_recommendations: 10
	service:
	  refresh_interval: 15m
	input:
	  dataset_path: /data/catalog.json
	logging:
	  level: debug
	  format: console

# Environment Variables

Mining:
  - MIN_SUPPORT, ITEM_ORDER, SUPPORT_STRATEGY, MAXIMAL_STRATEGY
  - MINING_PARALLELISM, MINING_RUN_TIMEOUT

Recommendations:
  - MATCHING_MODE, MAX_TOTAL_RECOMMENDATIONS, MAX_RECS_PER_ITEMSET
  - DISTINCT_ENTITIES, RECOMMEND_INSIGHTS

Watch service:
  - REFRESH_INTERVAL, MINE_ON_STARTUP, CACHE_ENTRIES, CACHE_TTL
  - SUPERVISOR_FAILURE_LIMIT, SUPERVISOR_BACKOFF, SUPERVISOR_SHUTDOWN_GRACE

Inputs and output:
  - DATASET_PATH, WATCHED_PATH, METRICS_TEXTFILE
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Validation

Struct tags are checked through the validation package, so errors name the
koanf path ("mining.min_support must be greater than 0"). The mining and
recommend engine configs derived from the result are validated as well.

# Hot Reload

WatchConfigFile invokes a callback when the YAML file changes. The watch
command reloads on that signal; callers guard shared config themselves.
*/
package config
