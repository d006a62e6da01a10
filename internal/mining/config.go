// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package mining

import (
	"fmt"
	"time"
)

// ItemOrder selects the total order used to rank items during the search.
// Any order produces the same frequent and maximal sets; it only changes the
// shape of the search tree.
type ItemOrder string

const (
	// OrderLexicographic ranks items by their canonical string order.
	OrderLexicographic ItemOrder = "lexicographic"
	// OrderFrequencyAsc ranks rare items first, which keeps membership lists
	// short near the root.
	OrderFrequencyAsc ItemOrder = "frequency_asc"
	// OrderFrequencyDesc ranks common items first.
	OrderFrequencyDesc ItemOrder = "frequency_desc"
)

// SupportStrategy selects how the support of a candidate itemset is computed.
type SupportStrategy string

const (
	// SupportTIDList intersects membership lists.
	SupportTIDList SupportStrategy = "tidlist"
	// SupportScan counts containing transactions with a full pass.
	SupportScan SupportStrategy = "scan"
)

// MaximalStrategy selects the maximality filter implementation.
type MaximalStrategy string

const (
	// MaximalPairwise compares every pair of frequent itemsets.
	MaximalPairwise MaximalStrategy = "pairwise"
	// MaximalIndexed checks candidates only against accepted maximal sets
	// through an item index.
	MaximalIndexed MaximalStrategy = "indexed"
)

// Config contains the parameters of a mining run.
type Config struct {
	// MinSupport is the minimum support ratio, in (0, 1].
	// An itemset is frequent when count/total >= MinSupport.
	MinSupport float64 `json:"min_support"`

	// ItemOrder is the total order used by the search.
	// Default: lexicographic.
	ItemOrder ItemOrder `json:"item_order"`

	// SupportStrategy selects how candidate support is counted.
	// Default: tidlist.
	SupportStrategy SupportStrategy `json:"support_strategy"`

	// MaximalStrategy selects the maximality filter.
	// Default: indexed.
	MaximalStrategy MaximalStrategy `json:"maximal_strategy"`

	// Parallelism is the number of root subtrees searched concurrently.
	// Values below 2 run the search on the calling goroutine.
	Parallelism int `json:"parallelism"`

	// RunTimeout bounds a single Mine call. Zero means no bound beyond the
	// caller's context.
	RunTimeout time.Duration `json:"run_timeout"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		MinSupport:      0.01,
		ItemOrder:       OrderLexicographic,
		SupportStrategy: SupportTIDList,
		MaximalStrategy: MaximalIndexed,
		Parallelism:     1,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := ValidateMinSupport(c.MinSupport); err != nil {
		return err
	}

	switch c.ItemOrder {
	case OrderLexicographic, OrderFrequencyAsc, OrderFrequencyDesc:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownItemOrder, c.ItemOrder)
	}

	switch c.SupportStrategy {
	case SupportTIDList, SupportScan:
	default:
		return fmt.Errorf("%w: support strategy %q", ErrUnknownStrategy, c.SupportStrategy)
	}

	switch c.MaximalStrategy {
	case MaximalPairwise, MaximalIndexed:
	default:
		return fmt.Errorf("%w: maximal strategy %q", ErrUnknownStrategy, c.MaximalStrategy)
	}

	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must be non-negative, got %d", c.Parallelism)
	}
	if c.RunTimeout < 0 {
		return fmt.Errorf("run_timeout must be non-negative, got %v", c.RunTimeout)
	}
	return nil
}

// ValidateMinSupport reports ErrInvalidSupportThreshold unless 0 < v <= 1.
// NaN is rejected.
func ValidateMinSupport(v float64) error {
	if !(v > 0 && v <= 1) {
		return fmt.Errorf("%w, got %v", ErrInvalidSupportThreshold, v)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// withDefaults fills zero-valued enum fields with their defaults.
func (c *Config) withDefaults() *Config {
	out := c.Clone()
	def := DefaultConfig()
	if out.ItemOrder == "" {
		out.ItemOrder = def.ItemOrder
	}
	if out.SupportStrategy == "" {
		out.SupportStrategy = def.SupportStrategy
	}
	if out.MaximalStrategy == "" {
		out.MaximalStrategy = def.MaximalStrategy
	}
	return out
}
