// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package recommend

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tagmine/internal/itemset"
	"github.com/tomtom215/tagmine/internal/logging"
	"github.com/tomtom215/tagmine/internal/mining"
)

// Engine ranks maximal itemsets against a user profile and picks catalog
// entities for each. It is safe for concurrent use.
type Engine struct {
	config  *Config
	catalog Catalog
	logger  zerolog.Logger

	requestCount atomic.Int64
	errorCount   atomic.Int64
	emitted      atomic.Int64

	outcomeMu sync.Mutex
	outcomes  map[Outcome]int64
}

// NewEngine creates a new recommendation engine. A nil cfg selects
// DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, catalog Catalog, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil {
		return nil, ErrNilCatalog
	}

	return &Engine{
		config:   cfg.Clone(),
		catalog:  catalog,
		logger:   logger.With().Str("component", "recommend").Logger(),
		outcomes: make(map[Outcome]int64),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// RecommendFromResult is Recommend over the maximal itemsets of a mining run.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) RecommendFromResult(ctx context.Context, res *mining.Result, req Request) (*Response, error) {
	return e.Recommend(ctx, res.MaximalItemsets(), req)
}

// Recommend scores maximal against the request's profile and fills each
// ranked itemset with its best unwatched catalog matches, subject to the
// per-itemset and total caps.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, maximal []itemset.Itemset, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Int("watched", len(req.Watched)).
		Logger()
	logger.Debug().Msg("processing recommendation request")

	profile := req.Profile
	if profile.IsEmpty() {
		profile = ProfileFromEntities(req.Watched)
	}

	resp := &Response{
		Entries: []RecommendationEntry{},
		Profile: profile,
		Metadata: ResponseMetadata{
			RequestID:    req.RequestID,
			MatchingMode: e.config.MatchingMode,
		},
	}

	switch {
	case profile.IsEmpty():
		return e.finish(resp, OutcomeNoProfile, start, logger), nil
	case len(maximal) == 0:
		return e.finish(resp, OutcomeNoCandidates, start, logger), nil
	}

	scored := ScoreItemsets(profile, maximal)
	if len(scored) == 0 {
		return e.finish(resp, OutcomeNoAffinity, start, logger), nil
	}
	resp.Relevant = len(scored)

	if err := e.fill(ctx, resp, scored, excludeSet(req)); err != nil {
		e.errorCount.Add(1)
		return nil, err
	}
	if e.config.Insights {
		resp.Insights.Composition = composition(scored)
	}

	return e.finish(resp, OutcomeRanked, start, logger), nil
}

// fill walks the ranked itemsets and appends an entry for each one that has
// at least one eligible match, until the total cap is reached. With insights
// enabled every itemset is matched so the affinity data is complete.
func (e *Engine) fill(ctx context.Context, resp *Response, scored []ScoredItemset, exclude map[string]struct{}) error {
	var emittedKeys map[string]struct{}
	if e.config.DistinctEntities {
		emittedKeys = make(map[string]struct{})
	}
	if e.config.Insights {
		resp.Insights = &Insights{Affinity: []AffinityPoint{}}
	}

	for _, s := range scored {
		remaining := e.config.MaxTotalRecommendations - resp.TotalEmitted
		if remaining <= 0 && !e.config.Insights {
			break
		}

		matches, err := e.catalog.Match(ctx, s.Itemset, e.config.MatchingMode)
		if err != nil {
			return fmt.Errorf("match itemset %s: %w", s.Itemset, err)
		}
		unwatched := filterEntities(matches, exclude)
		if e.config.Insights && len(unwatched) > 0 {
			resp.Insights.Affinity = append(resp.Insights.Affinity, affinityPoint(s, unwatched))
		}
		if remaining <= 0 {
			continue
		}

		eligible := unwatched
		if emittedKeys != nil {
			eligible = filterEntities(eligible, emittedKeys)
		}
		take := min(len(eligible), e.config.MaxRecsPerItemset, remaining)
		if take == 0 {
			continue
		}

		sortByQuality(eligible)
		chosen := slices.Clone(eligible[:take])
		resp.Entries = append(resp.Entries, RecommendationEntry{ScoredItemset: s, Entities: chosen})
		resp.TotalEmitted += take
		if emittedKeys != nil {
			for _, ent := range chosen {
				emittedKeys[ent.IdentityKey()] = struct{}{}
			}
		}
	}
	return nil
}

func (e *Engine) finish(resp *Response, outcome Outcome, start time.Time, logger zerolog.Logger) *Response {
	resp.Outcome = outcome
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	resp.Metadata.Timestamp = time.Now()

	e.emitted.Add(int64(resp.TotalEmitted))
	e.outcomeMu.Lock()
	e.outcomes[outcome]++
	e.outcomeMu.Unlock()

	logger.Debug().
		Str("outcome", outcome.String()).
		Int("profile_items", resp.Profile.Len()).
		Int("relevant", resp.Relevant).
		Int("entries", len(resp.Entries)).
		Int("emitted", resp.TotalEmitted).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")
	return resp
}

// Metrics returns a snapshot of the engine counters.
func (e *Engine) Metrics() Metrics {
	e.outcomeMu.Lock()
	outcomes := make(map[string]int64, len(e.outcomes))
	for o, n := range e.outcomes {
		outcomes[o.String()] = n
	}
	e.outcomeMu.Unlock()

	return Metrics{
		RequestCount: e.requestCount.Load(),
		ErrorCount:   e.errorCount.Load(),
		Emitted:      e.emitted.Load(),
		Outcomes:     outcomes,
	}
}

// excludeSet collects the normalized keys of watched entities and explicit
// exclusions.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func excludeSet(req Request) map[string]struct{} {
	out := make(map[string]struct{}, len(req.Watched)+len(req.ExcludeKeys))
	for _, w := range req.Watched {
		out[w.IdentityKey()] = struct{}{}
	}
	for _, k := range req.ExcludeKeys {
		out[NormalizeKey(k)] = struct{}{}
	}
	return out
}

func filterEntities(entities []Entity, drop map[string]struct{}) []Entity {
	out := make([]Entity, 0, len(entities))
	for _, ent := range entities {
		if _, ok := drop[ent.IdentityKey()]; !ok {
			out = append(out, ent)
		}
	}
	return out
}

// sortByQuality orders entities by quality descending, then identity key.
func sortByQuality(entities []Entity) {
	slices.SortStableFunc(entities, func(a, b Entity) int {
		if c := cmp.Compare(b.Quality, a.Quality); c != 0 {
			return c
		}
		return cmp.Compare(a.IdentityKey(), b.IdentityKey())
	})
}
