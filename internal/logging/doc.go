// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

// Package logging provides the zerolog-based structured logger used across
// Tagmine.
//
// The CLI calls Init once with the logging section of the loaded
// configuration. Library packages never touch the global logger: they take a
// zerolog.Logger in their constructors and add a component field, so tests
// can pass zerolog.Nop().
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "console"})
//
//	logging.Info().Str("dataset", path).Msg("dataset loaded")
//
//	ctx = logging.ContextWithNewRunID(ctx)
//	logging.Ctx(ctx).Info().Msg("mining started") // carries run_id
//
// # Formats
//
// Output goes to stderr so stdout stays clean for JSON results:
//
//	json     one JSON object per line (default)
//	console  human-readable, for interactive use
//
// # Suture Integration
//
// NewSlogLogger returns an slog.Logger that writes through the global
// zerolog logger. The supervisor hands it to sutureslog so service restarts
// and panics are logged in the same stream.
package logging
