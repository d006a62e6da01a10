// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/tagmine/internal/mining"
	"github.com/tomtom215/tagmine/internal/recommend"
)

// Mining run results.
const (
	ResultComplete  = "complete"
	ResultTruncated = "truncated"
	ResultError     = "error"
)

var (
	// Mining Metrics
	MiningRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagmine_mining_runs_total",
			Help: "Total number of mining runs by result",
		},
		[]string{"result"}, // "complete", "truncated", "error"
	)

	MiningDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tagmine_mining_duration_seconds",
			Help:    "Wall time of mining runs in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
	)

	MiningTransactions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tagmine_mining_transactions",
			Help: "Number of transactions in the last mining run",
		},
	)

	FrequentItemsets = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tagmine_frequent_itemsets",
			Help: "Number of frequent itemsets found by the last mining run",
		},
	)

	MaximalItemsets = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tagmine_maximal_itemsets",
			Help: "Number of maximal frequent itemsets found by the last mining run",
		},
	)

	SearchNodesVisited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tagmine_search_nodes_visited_total",
			Help: "Total number of search nodes whose extensions were explored",
		},
	)

	SearchPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tagmine_search_pruned_total",
			Help: "Total number of candidates rejected as infrequent",
		},
	)

	SearchDeadEnds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tagmine_search_dead_ends_total",
			Help: "Total number of search nodes with no frequent extension",
		},
	)

	PublishedVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tagmine_published_result_version",
			Help: "Version of the mining result currently served",
		},
	)

	// Result Cache Metrics
	ResultCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tagmine_result_cache_hits_total",
			Help: "Total number of mining result cache hits",
		},
	)

	ResultCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tagmine_result_cache_misses_total",
			Help: "Total number of mining result cache misses",
		},
	)

	ResultCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tagmine_result_cache_entries",
			Help: "Current number of cached mining results",
		},
	)

	// Dataset Metrics
	DatasetLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagmine_dataset_loads_total",
			Help: "Total number of dataset loads by result",
		},
		[]string{"result"}, // "ok", "error"
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagmine_recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ranked", "no_profile", "no_candidates", "no_affinity", "error", "canceled"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tagmine_recommend_duration_seconds",
			Help:    "Latency of recommendation requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendEmitted = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tagmine_recommend_emitted_entities",
			Help:    "Entities emitted per recommendation response",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)
)

// RecordMiningRun records a finished mining run. A nil result with a nil
// error is ignored.
func RecordMiningRun(res *mining.Result, err error) {
	if err != nil {
		MiningRuns.WithLabelValues(ResultError).Inc()
		return
	}
	if res == nil {
		return
	}

	result := ResultComplete
	if res.Truncated {
		result = ResultTruncated
	}
	MiningRuns.WithLabelValues(result).Inc()
	MiningDuration.Observe(res.Stats.Duration.Seconds())
	MiningTransactions.Set(float64(res.Transactions))
	FrequentItemsets.Set(float64(len(res.Frequent)))
	MaximalItemsets.Set(float64(len(res.Maximal)))
	SearchNodesVisited.Add(float64(res.Stats.NodesVisited))
	SearchPruned.Add(float64(res.Stats.Pruned))
	SearchDeadEnds.Add(float64(res.Stats.DeadEnds))
}

// RecordPublish records the version of a newly served result.
func RecordPublish(version int64) {
	PublishedVersion.Set(float64(version))
}

// RecordCacheLookup records a result cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		ResultCacheHits.Inc()
	} else {
		ResultCacheMisses.Inc()
	}
}

// SetCacheEntries updates the result cache size gauge.
func SetCacheEntries(n int) {
	ResultCacheEntries.Set(float64(n))
}

// RecordDatasetLoad records a dataset load attempt.
func RecordDatasetLoad(err error) {
	if err != nil {
		DatasetLoads.WithLabelValues("error").Inc()
		return
	}
	DatasetLoads.WithLabelValues("ok").Inc()
}

// RecordRecommendation records a recommendation request. Failed requests
// are labeled "canceled" when the context ended and "error" otherwise.
func RecordRecommendation(resp *recommend.Response, duration time.Duration, err error) {
	RecommendDuration.Observe(duration.Seconds())
	if err != nil || resp == nil {
		label := "error"
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			label = "canceled"
		}
		RecommendRequests.WithLabelValues(label).Inc()
		return
	}
	RecommendRequests.WithLabelValues(resp.Outcome.String()).Inc()
	RecommendEmitted.Observe(float64(resp.TotalEmitted))
}

// WriteTextfile writes the default registry to path in the text exposition
// format, for the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
