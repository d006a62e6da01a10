// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tagmine/internal/cache"
	"github.com/tomtom215/tagmine/internal/itemset"
	"github.com/tomtom215/tagmine/internal/logging"
	"github.com/tomtom215/tagmine/internal/metrics"
	"github.com/tomtom215/tagmine/internal/mining"
)

// Source loads the transaction collection to mine.
type Source interface {
	Load(ctx context.Context) (*itemset.Collection, error)
}

// Miner mines a collection at a given support threshold.
type Miner interface {
	MineWithSupport(ctx context.Context, coll *itemset.Collection, minSupport float64) (*mining.Result, error)
}

// PublishFunc is called after a result has been published.
type PublishFunc func(res *mining.Result, version int64)

// MiningServiceConfig holds configuration for the mining service.
type MiningServiceConfig struct {
	// RefreshInterval is how often the dataset is reloaded and mined.
	RefreshInterval time.Duration

	// MineOnStartup runs a refresh as soon as the service starts.
	MineOnStartup bool

	// MinSupport is the initial support threshold.
	MinSupport float64

	// RunTimeout bounds a single refresh. Zero means no deadline.
	RunTimeout time.Duration
}

// MiningService reloads the dataset, mines it and publishes the result to a
// mining.Store on every tick or trigger. Results of complete runs are cached
// by collection fingerprint and threshold, so an unchanged dataset is not
// mined twice.
type MiningService struct {
	source Source
	miner  Miner
	store  *mining.Store
	cache  *cache.LRU[*mining.Result]
	config MiningServiceConfig
	logger zerolog.Logger
	name   string

	minSupport atomic.Uint64 // math.Float64bits
	trigger    chan struct{}

	hooksMu sync.Mutex
	hooks   []PublishFunc
}

// NewMiningService creates a mining service. resultCache may be nil to
// disable caching.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMiningService(source Source, miner Miner, store *mining.Store, resultCache *cache.LRU[*mining.Result], cfg MiningServiceConfig, logger zerolog.Logger) (*MiningService, error) {
	if source == nil || miner == nil || store == nil {
		return nil, errors.New("mining service: source, miner and store are required")
	}
	if err := mining.ValidateMinSupport(cfg.MinSupport); err != nil {
		return nil, fmt.Errorf("mining service: %w", err)
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = time.Hour
	}

	s := &MiningService{
		source:  source,
		miner:   miner,
		store:   store,
		cache:   resultCache,
		config:  cfg,
		logger:  logger.With().Str("service", "mining").Logger(),
		name:    "mining-service",
		trigger: make(chan struct{}, 1),
	}
	s.minSupport.Store(math.Float64bits(cfg.MinSupport))
	return s, nil
}

// OnPublish registers fn to run after every publish.
func (s *MiningService) OnPublish(fn PublishFunc) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Trigger requests a refresh without waiting for the next tick. Requests
// made while one is already pending are coalesced.
func (s *MiningService) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// MinSupport returns the current support threshold.
func (s *MiningService) MinSupport() float64 {
	return math.Float64frombits(s.minSupport.Load())
}

// SetMinSupport changes the threshold and triggers a refresh.
func (s *MiningService) SetMinSupport(v float64) error {
	if err := mining.ValidateMinSupport(v); err != nil {
		return err
	}
	if old := s.minSupport.Swap(math.Float64bits(v)); old != math.Float64bits(v) {
		s.logger.Info().Float64("min_support", v).Msg("support threshold changed")
		s.Trigger()
	}
	return nil
}

// Serve implements the suture.Service interface.
func (s *MiningService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("mine_on_startup", s.config.MineOnStartup).
		Dur("refresh_interval", s.config.RefreshInterval).
		Msg("mining service starting")

	if s.config.MineOnStartup {
		if _, err := s.Refresh(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("initial refresh failed (will retry on schedule)")
		}
	}

	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("mining service shutting down")
			return ctx.Err()
		case <-ticker.C:
		case <-s.trigger:
			s.logger.Debug().Msg("refresh triggered")
		}
		if _, err := s.Refresh(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("refresh failed")
		}
	}
}

// Refresh runs one load, mine and publish cycle and returns the published
// version. A cache hit for the result already in the store publishes
// nothing and returns the current version.
func (s *MiningService) Refresh(ctx context.Context) (int64, error) {
	if s.config.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.RunTimeout)
		defer cancel()
	}
	ctx = logging.ContextWithNewRunID(ctx)

	coll, err := s.source.Load(ctx)
	metrics.RecordDatasetLoad(err)
	if err != nil {
		return 0, fmt.Errorf("load dataset: %w", err)
	}

	minSupport := s.MinSupport()
	key := cache.ResultKey(coll.Fingerprint(), minSupport)

	if s.cache != nil {
		if n := s.cache.CleanupExpired(); n > 0 {
			metrics.SetCacheEntries(s.cache.Len())
		}
		res, ok := s.cache.Get(key)
		metrics.RecordCacheLookup(ok)
		if ok {
			if cur, version := s.store.Current(); cur == res {
				s.logger.Debug().
					Str("run_id", logging.RunIDFromContext(ctx)).
					Int64("version", version).
					Msg("dataset unchanged, keeping published result")
				return version, nil
			}
			return s.publish(res), nil
		}
	}

	res, err := s.miner.MineWithSupport(ctx, coll, minSupport)
	metrics.RecordMiningRun(res, err)
	if err != nil {
		return 0, fmt.Errorf("mine: %w", err)
	}

	if s.cache != nil && !res.Truncated {
		s.cache.Add(key, res)
		metrics.SetCacheEntries(s.cache.Len())
	}
	return s.publish(res), nil
}

func (s *MiningService) publish(res *mining.Result) int64 {
	version := s.store.Publish(res)
	metrics.RecordPublish(version)

	s.logger.Info().
		Str("run_id", res.RunID).
		Int64("version", version).
		Int("transactions", res.Transactions).
		Int("maximal", len(res.Maximal)).
		Bool("truncated", res.Truncated).
		Msg("mining result published")

	s.hooksMu.Lock()
	hooks := append([]PublishFunc(nil), s.hooks...)
	s.hooksMu.Unlock()
	for _, fn := range hooks {
		fn(res, version)
	}
	return version
}

// String returns the service name for logging.
func (s *MiningService) String() string {
	return s.name
}
