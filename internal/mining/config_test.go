// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package mining

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		wantAny bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "min support one", mutate: func(c *Config) { c.MinSupport = 1 }},
		{name: "min support zero", mutate: func(c *Config) { c.MinSupport = 0 }, wantErr: ErrInvalidSupportThreshold},
		{name: "min support above one", mutate: func(c *Config) { c.MinSupport = 1.5 }, wantErr: ErrInvalidSupportThreshold},
		{name: "unknown order", mutate: func(c *Config) { c.ItemOrder = "random" }, wantErr: ErrUnknownItemOrder},
		{name: "unknown support strategy", mutate: func(c *Config) { c.SupportStrategy = "bitmap" }, wantErr: ErrUnknownStrategy},
		{name: "unknown maximal strategy", mutate: func(c *Config) { c.MaximalStrategy = "tree" }, wantErr: ErrUnknownStrategy},
		{name: "negative parallelism", mutate: func(c *Config) { c.Parallelism = -1 }, wantAny: true},
		{name: "negative timeout", mutate: func(c *Config) { c.RunTimeout = -time.Second }, wantAny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
				}
			case tt.wantAny:
				if err == nil {
					t.Error("Validate() = nil, want error")
				}
			default:
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
			}
		})
	}
}

func TestConfig_WithDefaultsFillsEnums(t *testing.T) {
	t.Parallel()

	cfg := (&Config{MinSupport: 0.2}).withDefaults()
	if cfg.ItemOrder != OrderLexicographic || cfg.SupportStrategy != SupportTIDList || cfg.MaximalStrategy != MaximalIndexed {
		t.Errorf("withDefaults() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	orig := DefaultConfig()
	clone := orig.Clone()
	clone.MinSupport = 0.9

	if orig.MinSupport == 0.9 {
		t.Error("Clone shares state with original")
	}
}
