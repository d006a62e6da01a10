// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/tagmine/internal/itemset"
	"github.com/tomtom215/tagmine/internal/mining"
	"github.com/tomtom215/tagmine/internal/recommend"
)

func sampleResult(truncated bool) *mining.Result {
	return &mining.Result{
		Transactions: 8,
		Frequent: []mining.FrequentItemset{
			{Itemset: itemset.MustNew("A"), Support: mining.NewSupport(6, 8)},
			{Itemset: itemset.MustNew("A", "B"), Support: mining.NewSupport(4, 8)},
			{Itemset: itemset.MustNew("B"), Support: mining.NewSupport(6, 8)},
		},
		Maximal: []mining.FrequentItemset{
			{Itemset: itemset.MustNew("A", "B"), Support: mining.NewSupport(4, 8)},
		},
		Truncated: truncated,
		Stats: mining.Stats{
			NodesVisited: 3,
			Pruned:       5,
			DeadEnds:     2,
			Duration:     25 * time.Millisecond,
		},
	}
}

// TestRecordMiningRun tests run counters and gauges
func TestRecordMiningRun(t *testing.T) {
	completeBefore := testutil.ToFloat64(MiningRuns.WithLabelValues(ResultComplete))
	truncatedBefore := testutil.ToFloat64(MiningRuns.WithLabelValues(ResultTruncated))
	errorBefore := testutil.ToFloat64(MiningRuns.WithLabelValues(ResultError))
	nodesBefore := testutil.ToFloat64(SearchNodesVisited)
	prunedBefore := testutil.ToFloat64(SearchPruned)
	deadBefore := testutil.ToFloat64(SearchDeadEnds)

	RecordMiningRun(sampleResult(false), nil)
	RecordMiningRun(sampleResult(true), nil)
	RecordMiningRun(nil, errors.New("boom"))
	RecordMiningRun(nil, nil)

	if got := testutil.ToFloat64(MiningRuns.WithLabelValues(ResultComplete)) - completeBefore; got != 1 {
		t.Errorf("complete runs delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(MiningRuns.WithLabelValues(ResultTruncated)) - truncatedBefore; got != 1 {
		t.Errorf("truncated runs delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(MiningRuns.WithLabelValues(ResultError)) - errorBefore; got != 1 {
		t.Errorf("error runs delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(SearchNodesVisited) - nodesBefore; got != 6 {
		t.Errorf("nodes visited delta = %v, want 6", got)
	}
	if got := testutil.ToFloat64(SearchPruned) - prunedBefore; got != 10 {
		t.Errorf("pruned delta = %v, want 10", got)
	}
	if got := testutil.ToFloat64(SearchDeadEnds) - deadBefore; got != 4 {
		t.Errorf("dead ends delta = %v, want 4", got)
	}

	if got := testutil.ToFloat64(FrequentItemsets); got != 3 {
		t.Errorf("FrequentItemsets = %v, want 3", got)
	}
	if got := testutil.ToFloat64(MaximalItemsets); got != 1 {
		t.Errorf("MaximalItemsets = %v, want 1", got)
	}
	if got := testutil.ToFloat64(MiningTransactions); got != 8 {
		t.Errorf("MiningTransactions = %v, want 8", got)
	}
}

// TestRecordCacheLookup tests cache hit and miss counters
func TestRecordCacheLookup(t *testing.T) {
	hitsBefore := testutil.ToFloat64(ResultCacheHits)
	missesBefore := testutil.ToFloat64(ResultCacheMisses)

	RecordCacheLookup(true)
	RecordCacheLookup(true)
	RecordCacheLookup(false)
	SetCacheEntries(4)

	if got := testutil.ToFloat64(ResultCacheHits) - hitsBefore; got != 2 {
		t.Errorf("hits delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(ResultCacheMisses) - missesBefore; got != 1 {
		t.Errorf("misses delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ResultCacheEntries); got != 4 {
		t.Errorf("ResultCacheEntries = %v, want 4", got)
	}
}

func TestRecordDatasetLoadAndPublish(t *testing.T) {
	okBefore := testutil.ToFloat64(DatasetLoads.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(DatasetLoads.WithLabelValues("error"))

	RecordDatasetLoad(nil)
	RecordDatasetLoad(errors.New("missing file"))
	RecordPublish(7)

	if got := testutil.ToFloat64(DatasetLoads.WithLabelValues("ok")) - okBefore; got != 1 {
		t.Errorf("ok loads delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(DatasetLoads.WithLabelValues("error")) - errBefore; got != 1 {
		t.Errorf("error loads delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(PublishedVersion); got != 7 {
		t.Errorf("PublishedVersion = %v, want 7", got)
	}
}

// TestRecordRecommendation tests outcome labels
func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name  string
		resp  *recommend.Response
		err   error
		label string
	}{
		{"ranked", &recommend.Response{Outcome: recommend.OutcomeRanked, TotalEmitted: 3}, nil, "ranked"},
		{"no profile", &recommend.Response{Outcome: recommend.OutcomeNoProfile}, nil, "no_profile"},
		{"no affinity", &recommend.Response{Outcome: recommend.OutcomeNoAffinity}, nil, "no_affinity"},
		{"catalog failure", nil, errors.New("catalog down"), "error"},
		{"canceled", nil, context.Canceled, "canceled"},
		{"deadline", nil, context.DeadlineExceeded, "canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendRequests.WithLabelValues(tt.label))
			RecordRecommendation(tt.resp, time.Millisecond, tt.err)
			if got := testutil.ToFloat64(RecommendRequests.WithLabelValues(tt.label)) - before; got != 1 {
				t.Errorf("%s delta = %v, want 1", tt.label, got)
			}
		})
	}
}

func TestWriteTextfile(t *testing.T) {
	RecordMiningRun(sampleResult(false), nil)

	path := filepath.Join(t.TempDir(), "tagmine.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	for _, name := range []string{"tagmine_mining_runs_total", "tagmine_frequent_itemsets", "tagmine_mining_duration_seconds_bucket"} {
		if !strings.Contains(string(data), name) {
			t.Errorf("textfile missing %s", name)
		}
	}
}
