// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package mining

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/tagmine/internal/itemset"
	"github.com/tomtom215/tagmine/internal/logging"
)

// Miner runs maximal frequent itemset searches. It holds no per-run state
// and is safe for concurrent use.
type Miner struct {
	config *Config
	logger zerolog.Logger

	runs      atomic.Int64
	truncated atomic.Int64
}

// NewMiner creates a Miner. A nil cfg selects DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMiner(cfg *Config, logger zerolog.Logger) (*Miner, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Miner{
		config: cfg,
		logger: logger.With().Str("component", "mining").Logger(),
	}, nil
}

// Config returns a copy of the miner's configuration.
func (m *Miner) Config() *Config {
	return m.config.Clone()
}

// Runs returns the number of completed Mine calls, and how many of them
// were truncated.
func (m *Miner) Runs() (total, truncated int64) {
	return m.runs.Load(), m.truncated.Load()
}

// Mine finds every frequent and maximal itemset of coll using the configured
// threshold.
func (m *Miner) Mine(ctx context.Context, coll *itemset.Collection) (*Result, error) {
	return m.MineWithSupport(ctx, coll, m.config.MinSupport)
}

// MineWithSupport is Mine with a per-call threshold. It returns
// ErrInvalidSupportThreshold unless 0 < minSupport <= 1.
//
// When ctx ends mid-search the result holds what had been committed so far
// and Truncated is set; this is not an error.
func (m *Miner) MineWithSupport(ctx context.Context, coll *itemset.Collection, minSupport float64) (*Result, error) {
	if err := ValidateMinSupport(minSupport); err != nil {
		return nil, err
	}
	if coll == nil {
		coll = itemset.NewCollection()
	}
	if m.config.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.RunTimeout)
		defer cancel()
	}

	start := time.Now()
	res := &Result{
		RunID:        runID(ctx),
		Fingerprint:  coll.Fingerprint(),
		Transactions: coll.Len(),
		MinSupport:   minSupport,
		ItemOrder:    m.config.ItemOrder,
		Frequent:     []FrequentItemset{},
		Maximal:      []FrequentItemset{},
		StartedAt:    start,
	}
	logger := m.logger.With().Str("run_id", res.RunID).Logger()

	logger.Debug().
		Int("transactions", res.Transactions).
		Float64("min_support", minSupport).
		Str("item_order", string(m.config.ItemOrder)).
		Str("support_strategy", string(m.config.SupportStrategy)).
		Msg("starting mining run")

	if coll.Len() == 0 {
		res.Empty = true
		res.Stats.Duration = time.Since(start)
		m.runs.Add(1)
		logger.Debug().Msg("empty collection, nothing to mine")
		return res, nil
	}

	s, pruned := m.prepare(coll, minSupport)
	res.Stats.Pruned = pruned

	for _, b := range m.explore(ctx, s) {
		res.Frequent = append(res.Frequent, b.records...)
		res.Stats.add(b.stats)
		res.Truncated = res.Truncated || b.truncated
	}

	sortRecords(res.Frequent)
	res.Maximal = m.filterMaximal(res.Frequent)
	res.Stats.Duration = time.Since(start)

	m.runs.Add(1)
	if res.Truncated {
		m.truncated.Add(1)
		logger.Warn().
			Int("frequent", len(res.Frequent)).
			Dur("duration", res.Stats.Duration).
			Msg("mining run truncated by context")
	} else {
		logger.Info().
			Int("transactions", res.Transactions).
			Int("frequent_items", len(s.items)).
			Int("frequent", len(res.Frequent)).
			Int("maximal", len(res.Maximal)).
			Int64("nodes_visited", res.Stats.NodesVisited).
			Int64("pruned", res.Stats.Pruned).
			Dur("duration", res.Stats.Duration).
			Msg("mining run complete")
	}

	return res, nil
}

// prepare indexes coll, discards infrequent singletons and ranks the rest.
// It returns the search state and the number of singletons discarded.
func (m *Miner) prepare(coll *itemset.Collection, minSupport float64) (*search, int64) {
	counter := NewTIDCounter(coll)
	total := coll.Len()

	var (
		frequent []string
		pruned   int64
	)
	for _, it := range coll.Universe() {
		if NewSupport(len(counter.List(it)), total).Meets(minSupport) {
			frequent = append(frequent, it)
		} else {
			pruned++
		}
	}

	ranked := rankItems(frequent, func(it string) int { return len(counter.List(it)) }, m.config.ItemOrder)
	lists := make([]TIDList, len(ranked))
	for r, it := range ranked {
		lists[r] = counter.List(it)
	}

	s := &search{
		items:      ranked,
		lists:      lists,
		total:      total,
		minSupport: minSupport,
	}
	if m.config.SupportStrategy == SupportScan {
		s.scan = NewScanCounter(coll)
	}
	return s, pruned
}

// explore searches every root subtree and returns the branches in rank order.
func (m *Miner) explore(ctx context.Context, s *search) []branch {
	branches := make([]branch, len(s.items))

	if m.config.Parallelism < 2 || len(s.items) < 2 {
		for r := range s.items {
			branches[r] = s.root(ctx, r)
			if branches[r].truncated {
				break
			}
		}
		return branches
	}

	var g errgroup.Group
	g.SetLimit(m.config.Parallelism)
	for r := range s.items {
		g.Go(func() error {
			branches[r] = s.root(ctx, r)
			return nil
		})
	}
	_ = g.Wait() // branches never fail

	return branches
}

func (m *Miner) filterMaximal(recs []FrequentItemset) []FrequentItemset {
	if m.config.MaximalStrategy == MaximalPairwise {
		return FilterMaximal(recs)
	}
	return FilterMaximalIndexed(recs)
}

// runID takes the run ID from ctx, generating one when none is set.
func runID(ctx context.Context) string {
	if id := logging.RunIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
