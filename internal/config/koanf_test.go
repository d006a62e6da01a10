// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv unsets every mapped variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for name := range envMappings {
		t.Setenv(strings.ToUpper(name), "")
		os.Unsetenv(strings.ToUpper(name))
	}
	t.Setenv(ConfigPathEnvVar, "")
	os.Unsetenv(ConfigPathEnvVar)
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tagmine.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MIN_SUPPORT", "mining.min_support"},
		{"ITEM_ORDER", "mining.item_order"},
		{"MINING_PARALLELISM", "mining.parallelism"},
		{"MINING_RUN_TIMEOUT", "mining.run_timeout"},
		{"MATCHING_MODE", "recommend.matching_mode"},
		{"MAX_RECS_PER_ITEMSET", "recommend.max_recs_per_itemset"},
		{"REFRESH_INTERVAL", "service.refresh_interval"},
		{"SUPERVISOR_BACKOFF", "service.failure_backoff"},
		{"DATASET_PATH", "input.dataset_path"},
		{"LOG_LEVEL", "logging.level"},
		{"METRICS_TEXTFILE", "metrics.textfile_path"},

		// Unmapped variables are dropped
		{"PATH", ""},
		{"HOME", ""},
		{"TAGMINE_CONFIG", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.input); got != tt.expected {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *defaultConfig() {
		t.Errorf("Load() = %+v, want defaults", *cfg)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := writeYAML(t, `
mining:
  min_support: 0.3
  item_order: frequency_desc
  parallelism: 4
  run_timeout: 45s
recommend:
  matching_mode: exact
  max_total_recommendations: 7
service:
  refresh_interval: 15m
input:
  dataset_path: /data/catalog.json
logging:
  level: debug
`)

	cfg, err := Load(LoadOptions{Path: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Mining.MinSupport != 0.3 {
		t.Errorf("Mining.MinSupport = %v, want 0.3", cfg.Mining.MinSupport)
	}
	if cfg.Mining.ItemOrder != "frequency_desc" {
		t.Errorf("Mining.ItemOrder = %q", cfg.Mining.ItemOrder)
	}
	if cfg.Mining.Parallelism != 4 {
		t.Errorf("Mining.Parallelism = %d, want 4", cfg.Mining.Parallelism)
	}
	if cfg.Mining.RunTimeout != 45*time.Second {
		t.Errorf("Mining.RunTimeout = %v, want 45s", cfg.Mining.RunTimeout)
	}
	if cfg.Recommend.MatchingMode != "exact" || cfg.Recommend.MaxTotalRecommendations != 7 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Recommend.MaxRecsPerItemset != 5 {
		t.Errorf("Recommend.MaxRecsPerItemset = %d, want default 5", cfg.Recommend.MaxRecsPerItemset)
	}
	if cfg.Service.RefreshInterval != 15*time.Minute {
		t.Errorf("Service.RefreshInterval = %v, want 15m", cfg.Service.RefreshInterval)
	}
	if cfg.Input.DatasetPath != "/data/catalog.json" {
		t.Errorf("Input.DatasetPath = %q", cfg.Input.DatasetPath)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := writeYAML(t, "mining:\n  min_support: 0.3\n")
	t.Setenv("MIN_SUPPORT", "0.5")
	t.Setenv("MATCHING_MODE", "exact")
	t.Setenv("CACHE_TTL", "2h")
	t.Setenv("DISTINCT_ENTITIES", "true")

	cfg, err := Load(LoadOptions{Path: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mining.MinSupport != 0.5 {
		t.Errorf("Mining.MinSupport = %v, want 0.5 from env", cfg.Mining.MinSupport)
	}
	if cfg.Recommend.MatchingMode != "exact" || !cfg.Recommend.DistinctEntities {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Service.CacheTTL != 2*time.Hour {
		t.Errorf("Service.CacheTTL = %v, want 2h", cfg.Service.CacheTTL)
	}
}

func TestLoad_OverridesWin(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("MIN_SUPPORT", "0.5")

	cfg, err := Load(LoadOptions{Overrides: map[string]interface{}{
		"mining.min_support": 0.25,
		"input.dataset_path": "catalog.json",
	}})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mining.MinSupport != 0.25 {
		t.Errorf("Mining.MinSupport = %v, want 0.25 from override", cfg.Mining.MinSupport)
	}
	if cfg.Input.DatasetPath != "catalog.json" {
		t.Errorf("Input.DatasetPath = %q", cfg.Input.DatasetPath)
	}
}

func TestLoad_ConfigPathEnvVar(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	path := writeYAML(t, "recommend:\n  max_recs_per_itemset: 2\n")
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Recommend.MaxRecsPerItemset != 2 {
		t.Errorf("Recommend.MaxRecsPerItemset = %d, want 2", cfg.Recommend.MaxRecsPerItemset)
	}
	if got := ResolvePath(LoadOptions{}); got != path {
		t.Errorf("ResolvePath() = %q, want %q", got, path)
	}
	if got := ResolvePath(LoadOptions{Path: "explicit.yaml"}); got != "explicit.yaml" {
		t.Errorf("ResolvePath(explicit) = %q", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "absent.yaml")})
		if err == nil {
			t.Fatal("Load() = nil, want error")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeYAML(t, "mining: [unclosed\n")
		if _, err := Load(LoadOptions{Path: path}); err == nil {
			t.Fatal("Load() = nil, want parse error")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeYAML(t, "mining:\n  min_support: 1.5\n")
		_, err := Load(LoadOptions{Path: path})
		if err == nil || !strings.Contains(err.Error(), "mining.min_support") {
			t.Fatalf("Load() = %v, want mining.min_support error", err)
		}
	})
}
