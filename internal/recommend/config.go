// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package recommend

import (
	"fmt"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// MatchingMode selects exact or superset catalog matching.
	// Default: superset.
	MatchingMode MatchMode `json:"matching_mode"`

	// MaxTotalRecommendations caps the entities emitted across all entries.
	// Default: 20.
	MaxTotalRecommendations int `json:"max_total_recommendations"`

	// MaxRecsPerItemset caps the entities emitted for a single itemset.
	// Default: 5.
	MaxRecsPerItemset int `json:"max_recs_per_itemset"`

	// DistinctEntities prevents an entity from being emitted under more than
	// one itemset.
	DistinctEntities bool `json:"distinct_entities"`

	// Insights enables composition and affinity-vs-quality data.
	Insights bool `json:"insights"`
}

// DefaultConfig returns a configuration with the standard caps.
func DefaultConfig() *Config {
	return &Config{
		MatchingMode:            MatchSuperset,
		MaxTotalRecommendations: 20,
		MaxRecsPerItemset:       5,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MatchingMode != MatchSuperset && c.MatchingMode != MatchExact {
		return fmt.Errorf("%w: %d", ErrInvalidMatchingMode, int(c.MatchingMode))
	}
	if c.MaxTotalRecommendations < 0 {
		return fmt.Errorf("max_total_recommendations must be non-negative, got %d", c.MaxTotalRecommendations)
	}
	if c.MaxRecsPerItemset < 0 {
		return fmt.Errorf("max_recs_per_itemset must be non-negative, got %d", c.MaxRecsPerItemset)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
