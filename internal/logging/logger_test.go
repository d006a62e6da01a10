// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

// The tests below reconfigure the global logger and must not run in parallel.

func TestInit_JSON(t *testing.T) {
	defer Init(DefaultConfig())

	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})

	Info().Str("dataset", "films.json").Msg("dataset loaded")
	Debug().Msg("debug line")

	out := buf.String()
	for _, want := range []string{`"level":"info"`, `"dataset":"films.json"`, `"message":"dataset loaded"`, "debug line"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestInit_LevelFilters(t *testing.T) {
	defer Init(DefaultConfig())

	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})

	Info().Msg("hidden")
	Warn().Msg("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("info written at warn level: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn not written: %s", buf.String())
	}
	if GetLevel() != zerolog.WarnLevel {
		t.Errorf("GetLevel() = %v, want warn", GetLevel())
	}
}

func TestInit_Console(t *testing.T) {
	defer Init(DefaultConfig())

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})
	Info().Msg("console line")

	out := buf.String()
	if !strings.Contains(out, "console line") {
		t.Errorf("output missing message: %s", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("console format wrote JSON: %s", out)
	}
}

func TestErrAndComponent(t *testing.T) {
	defer Init(DefaultConfig())

	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})

	Err(errors.New("boom")).Msg("failed")
	l := Component("mining")
	l.Info().Msg("tagged")

	out := buf.String()
	if !strings.Contains(out, `"error":"boom"`) {
		t.Errorf("output missing error field: %s", out)
	}
	if !strings.Contains(out, `"component":"mining"`) {
		t.Errorf("output missing component field: %s", out)
	}
}

func TestSetLogger(t *testing.T) {
	defer Init(DefaultConfig())

	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	Warn().Msg("replaced")

	if !strings.Contains(buf.String(), "replaced") {
		t.Errorf("SetLogger not applied: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{" DEBUG ", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
