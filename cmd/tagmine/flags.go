// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package main

import (
	"flag"

	"github.com/tomtom215/tagmine/internal/config"
)

// commandFlags holds the flag values of one invocation. Only flags set on
// the command line override the configuration.
type commandFlags struct {
	configPath string
	output     string

	minSupport      float64
	itemOrder       string
	supportStrategy string
	maximalStrategy string
	parallelism     int

	matchingMode  string
	maxTotal      int
	maxPerItemset int
	distinct      bool
	insights      bool

	dataset  string
	watched  string
	logLevel string
	textfile string
}

// flagPaths maps flag names to the koanf paths they override.
var flagPaths = map[string]string{
	"min-support":      "mining.min_support",
	"item-order":       "mining.item_order",
	"support-strategy": "mining.support_strategy",
	"maximal-strategy": "mining.maximal_strategy",
	"parallelism":      "mining.parallelism",
	"matching-mode":    "recommend.matching_mode",
	"max-total":        "recommend.max_total_recommendations",
	"max-per-itemset":  "recommend.max_recs_per_itemset",
	"distinct":         "recommend.distinct_entities",
	"insights":         "recommend.insights",
	"dataset":          "input.dataset_path",
	"watched":          "input.watched_path",
	"log-level":        "logging.level",
	"metrics-textfile": "metrics.textfile_path",
}

func registerFlags(fs *flag.FlagSet, command string) *commandFlags {
	f := &commandFlags{}

	fs.StringVar(&f.configPath, "config", "", "YAML config file (default: $TAGMINE_CONFIG or ./tagmine.yaml)")
	fs.StringVar(&f.dataset, "dataset", "", "dataset file (.json, .csv or .tsv)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	fs.StringVar(&f.textfile, "metrics-textfile", "", "write Prometheus metrics to this file")

	fs.Float64Var(&f.minSupport, "min-support", 0, "minimum support ratio in (0, 1]")
	fs.StringVar(&f.itemOrder, "item-order", "", "search order: lexicographic, frequency_asc, frequency_desc")
	fs.StringVar(&f.supportStrategy, "support-strategy", "", "support counting: tidlist or scan")
	fs.StringVar(&f.maximalStrategy, "maximal-strategy", "", "maximality filter: indexed or pairwise")
	fs.IntVar(&f.parallelism, "parallelism", 0, "number of root subtrees searched concurrently")

	if command != "mine" {
		fs.StringVar(&f.watched, "watched", "", "watched list file (JSON)")
		fs.StringVar(&f.matchingMode, "matching-mode", "", "entity matching: superset or exact")
		fs.IntVar(&f.maxTotal, "max-total", 0, "maximum recommended entities in total")
		fs.IntVar(&f.maxPerItemset, "max-per-itemset", 0, "maximum recommended entities per itemset")
		fs.BoolVar(&f.distinct, "distinct", false, "recommend each entity at most once")
		fs.BoolVar(&f.insights, "insights", false, "include composition and affinity data")
	}
	if command == "watch" {
		fs.StringVar(&f.output, "out", "", "write each published result to this file instead of stdout")
	}
	return f
}

// loadOptions turns the flags set on the command line into config overrides.
func (f *commandFlags) loadOptions(fs *flag.FlagSet) config.LoadOptions {
	values := map[string]interface{}{
		"min-support":      f.minSupport,
		"item-order":       f.itemOrder,
		"support-strategy": f.supportStrategy,
		"maximal-strategy": f.maximalStrategy,
		"parallelism":      f.parallelism,
		"matching-mode":    f.matchingMode,
		"max-total":        f.maxTotal,
		"max-per-itemset":  f.maxPerItemset,
		"distinct":         f.distinct,
		"insights":         f.insights,
		"dataset":          f.dataset,
		"watched":          f.watched,
		"log-level":        f.logLevel,
		"metrics-textfile": f.textfile,
	}

	opts := config.LoadOptions{Path: f.configPath, Overrides: map[string]interface{}{}}
	fs.Visit(func(fl *flag.Flag) {
		if path, ok := flagPaths[fl.Name]; ok {
			opts.Overrides[path] = values[fl.Name]
		}
	})
	return opts
}
