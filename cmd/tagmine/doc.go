// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

// Command tagmine mines maximal frequent tag sets from a media catalog and
// recommends unwatched entries to users whose watched list overlaps them.
//
// # Commands
//
//	tagmine mine      -dataset movies.csv -min-support 0.05
//	tagmine recommend -dataset movies.csv -watched watched.json
//	tagmine watch     -dataset movies.json -watched watched.json -out latest.json
//
// Results are written to stdout as JSON, logs to stderr.
//
// # Configuration
//
// Settings are layered (highest priority wins):
//   - Command line flags
//   - Environment variables (MIN_SUPPORT, MATCHING_MODE, LOG_LEVEL, ...)
//   - YAML config file ($TAGMINE_CONFIG, ./tagmine.yaml, /etc/tagmine/config.yaml)
//   - Built-in defaults
//
// # Watch Mode
//
// watch runs the mining service under a suture supervisor tree. The dataset
// is re-read every service.refresh_interval and re-mined unless its
// fingerprint and threshold are already cached. Editing
// mining.min_support in the config file triggers an immediate re-mine.
// SIGINT and SIGTERM stop the tree gracefully.
//
// # Exit Codes
//
//	0  success
//	1  runtime failure (unreadable dataset, invalid configuration, ...)
//	2  usage error
package main
