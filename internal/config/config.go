// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/tagmine/internal/logging"
	"github.com/tomtom215/tagmine/internal/mining"
	"github.com/tomtom215/tagmine/internal/recommend"
	"github.com/tomtom215/tagmine/internal/supervisor"
)

// Config holds the complete Tagmine configuration.
type Config struct {
	Mining    MiningConfig    `koanf:"mining"`
	Recommend RecommendConfig `koanf:"recommend"`
	Service   ServiceConfig   `koanf:"service"`
	Input     InputConfig     `koanf:"input"`
	Logging   LoggingConfig   `koanf:"logging"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// MiningConfig controls the itemset search.
//
// Environment Variables:
//   - MIN_SUPPORT: minimum support ratio in (0, 1] (default: 0.01)
//   - ITEM_ORDER: lexicographic, frequency_asc or frequency_desc
//   - SUPPORT_STRATEGY: tidlist or scan
//   - MAXIMAL_STRATEGY: pairwise or indexed
//   - MINING_PARALLELISM: concurrent root subtrees (default: 1)
//   - MINING_RUN_TIMEOUT: per-run bound, 0 disables (default: 0)
type MiningConfig struct {
	MinSupport      float64       `koanf:"min_support" validate:"gt=0,lte=1"`
	ItemOrder       string        `koanf:"item_order" validate:"oneof=lexicographic frequency_asc frequency_desc"`
	SupportStrategy string        `koanf:"support_strategy" validate:"oneof=tidlist scan"`
	MaximalStrategy string        `koanf:"maximal_strategy" validate:"oneof=pairwise indexed"`
	Parallelism     int           `koanf:"parallelism" validate:"gte=1"`
	RunTimeout      time.Duration `koanf:"run_timeout" validate:"gte=0"`
}

// RecommendConfig controls catalog matching and the output caps.
//
// Environment Variables:
//   - MATCHING_MODE: superset or exact (default: superset)
//   - MAX_TOTAL_RECOMMENDATIONS: cap across a response (default: 20)
//   - MAX_RECS_PER_ITEMSET: cap per itemset (default: 5)
//   - DISTINCT_ENTITIES: emit each entity at most once (default: false)
//   - RECOMMEND_INSIGHTS: attach composition and affinity data (default: false)
type RecommendConfig struct {
	MatchingMode            string `koanf:"matching_mode" validate:"oneof=superset exact"`
	MaxTotalRecommendations int    `koanf:"max_total_recommendations" validate:"gte=0"`
	MaxRecsPerItemset       int    `koanf:"max_recs_per_itemset" validate:"gte=0"`
	DistinctEntities        bool   `koanf:"distinct_entities"`
	Insights                bool   `koanf:"insights"`
}

// ServiceConfig controls the long-running watch mode.
type ServiceConfig struct {
	// RefreshInterval is how often the dataset is re-read and re-mined.
	RefreshInterval time.Duration `koanf:"refresh_interval" validate:"gt=0"`

	// MineOnStartup runs a mining pass before the first tick.
	MineOnStartup bool `koanf:"mine_on_startup"`

	// CacheEntries bounds the mining result cache. Zero disables caching.
	CacheEntries int `koanf:"cache_entries" validate:"gte=0"`

	// CacheTTL is how long a cached result stays valid.
	CacheTTL time.Duration `koanf:"cache_ttl" validate:"gte=0"`

	// FailureThreshold and FailureBackoff tune the supervisor restart policy.
	FailureThreshold float64       `koanf:"failure_threshold" validate:"gte=0"`
	FailureBackoff   time.Duration `koanf:"failure_backoff" validate:"gte=0"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout" validate:"gte=0"`
}

// InputConfig names the files read by the CLI and the watch service.
type InputConfig struct {
	DatasetPath string `koanf:"dataset_path"`
	WatchedPath string `koanf:"watched_path"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled"`

	// Format is json or console.
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// MetricsConfig controls Prometheus export.
type MetricsConfig struct {
	// TextfilePath, when set, receives the registry in text exposition format
	// after each command or mining pass.
	TextfilePath string `koanf:"textfile_path"`
}

// MiningEngineConfig converts the mining section.
func (c *Config) MiningEngineConfig() *mining.Config {
	return &mining.Config{
		MinSupport:      c.Mining.MinSupport,
		ItemOrder:       mining.ItemOrder(c.Mining.ItemOrder),
		SupportStrategy: mining.SupportStrategy(c.Mining.SupportStrategy),
		MaximalStrategy: mining.MaximalStrategy(c.Mining.MaximalStrategy),
		Parallelism:     c.Mining.Parallelism,
		RunTimeout:      c.Mining.RunTimeout,
	}
}

// RecommendEngineConfig converts the recommend section.
func (c *Config) RecommendEngineConfig() (*recommend.Config, error) {
	mode, err := recommend.ParseMatchMode(c.Recommend.MatchingMode)
	if err != nil {
		return nil, fmt.Errorf("recommend.matching_mode: %w", err)
	}
	return &recommend.Config{
		MatchingMode:            mode,
		MaxTotalRecommendations: c.Recommend.MaxTotalRecommendations,
		MaxRecsPerItemset:       c.Recommend.MaxRecsPerItemset,
		DistinctEntities:        c.Recommend.DistinctEntities,
		Insights:                c.Recommend.Insights,
	}, nil
}

// LoggingSetup converts the logging section. Output and timestamps keep the
// logging package defaults.
func (c *Config) LoggingSetup() logging.Config {
	out := logging.DefaultConfig()
	out.Level = c.Logging.Level
	out.Format = c.Logging.Format
	out.Caller = c.Logging.Caller
	return out
}

// TreeConfig converts the supervisor fields of the service section.
func (c *Config) TreeConfig() supervisor.TreeConfig {
	tc := supervisor.DefaultTreeConfig()
	if c.Service.FailureThreshold > 0 {
		tc.FailureThreshold = c.Service.FailureThreshold
	}
	if c.Service.FailureBackoff > 0 {
		tc.FailureBackoff = c.Service.FailureBackoff
	}
	if c.Service.ShutdownTimeout > 0 {
		tc.ShutdownTimeout = c.Service.ShutdownTimeout
	}
	return tc
}
