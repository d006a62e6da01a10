// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"tagmine.yaml",
	"tagmine.yml",
	"/etc/tagmine/config.yaml",
	"/etc/tagmine/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "TAGMINE_CONFIG"

// defaultConfig returns a Config with every default set. Defaults are loaded
// first and then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Mining: MiningConfig{
			MinSupport:      0.01,
			ItemOrder:       "lexicographic",
			SupportStrategy: "tidlist",
			MaximalStrategy: "indexed",
			Parallelism:     1,
			RunTimeout:      0,
		},
		Recommend: RecommendConfig{
			MatchingMode:            "superset",
			MaxTotalRecommendations: 20,
			MaxRecsPerItemset:       5,
			DistinctEntities:        false,
			Insights:                false,
		},
		Service: ServiceConfig{
			RefreshInterval:  time.Hour,
			MineOnStartup:    true,
			CacheEntries:     16,
			CacheTTL:         24 * time.Hour,
			FailureThreshold: 5,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadOptions adjusts Load.
type LoadOptions struct {
	// Path is the config file to read. Empty means search ConfigPathEnvVar
	// and DefaultConfigPaths; a missing default file is not an error.
	Path string

	// Overrides are applied last, keyed by koanf path (e.g.
	// "mining.min_support"). The CLI maps its flags here.
	Overrides map[string]interface{}
}

// Load builds the configuration from layered sources:
//  1. Defaults
//  2. YAML config file (optional unless opts.Path is set)
//  3. Environment variables
//  4. Explicit overrides
//
// The result is validated before it is returned.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath := opts.Path
	if configPath == "" {
		configPath = findConfigFile()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for path, val := range opts.Overrides {
		if err := k.Set(path, val); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// ResolvePath returns the config file Load would read for opts, or "" when
// none exists.
func ResolvePath(opts LoadOptions) string {
	if opts.Path != "" {
		return opts.Path
	}
	return findConfigFile()
}

// findConfigFile returns the first existing config path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"min_support":        "mining.min_support",
	"item_order":         "mining.item_order",
	"support_strategy":   "mining.support_strategy",
	"maximal_strategy":   "mining.maximal_strategy",
	"mining_parallelism": "mining.parallelism",
	"mining_run_timeout": "mining.run_timeout",

	"matching_mode":             "recommend.matching_mode",
	"max_total_recommendations": "recommend.max_total_recommendations",
	"max_recs_per_itemset":      "recommend.max_recs_per_itemset",
	"distinct_entities":         "recommend.distinct_entities",
	"recommend_insights":        "recommend.insights",

	"refresh_interval":          "service.refresh_interval",
	"mine_on_startup":           "service.mine_on_startup",
	"cache_entries":             "service.cache_entries",
	"cache_ttl":                 "service.cache_ttl",
	"supervisor_failure_limit":  "service.failure_threshold",
	"supervisor_backoff":        "service.failure_backoff",
	"supervisor_shutdown_grace": "service.shutdown_timeout",

	"dataset_path": "input.dataset_path",
	"watched_path": "input.watched_path",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"metrics_textfile": "metrics.textfile_path",
}

// envTransformFunc maps an environment variable name to its koanf path.
//
// Examples:
//   - MIN_SUPPORT -> mining.min_support
//   - MATCHING_MODE -> recommend.matching_mode
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// WatchConfigFile calls callback whenever the file at path changes. The
// caller reloads and guards the configuration itself.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)
	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
