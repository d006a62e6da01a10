// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package config

import (
	"fmt"

	"github.com/tomtom215/tagmine/internal/validation"
)

// Validate checks every section against its struct tags, then the rules that
// span fields.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	if err := c.validateService(); err != nil {
		return err
	}
	return c.validateEngines()
}

// validateService rejects a cache that can never hold an entry long enough
// to be reused.
func (c *Config) validateService() error {
	if c.Service.CacheEntries > 0 && c.Service.CacheTTL == 0 {
		return fmt.Errorf("service.cache_ttl must be positive when service.cache_entries is %d", c.Service.CacheEntries)
	}
	return nil
}

// validateEngines runs the engine constructors' own checks so a config that
// loads is one the engines accept.
func (c *Config) validateEngines() error {
	if err := c.MiningEngineConfig().Validate(); err != nil {
		return fmt.Errorf("mining: %w", err)
	}
	rc, err := c.RecommendEngineConfig()
	if err != nil {
		return err
	}
	if err := rc.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}
