// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// TextfileWriter writes the current metrics to path.
type TextfileWriter func(path string) error

// TextfileService periodically exports metrics in the Prometheus textfile
// format for node_exporter's textfile collector.
type TextfileService struct {
	path     string
	interval time.Duration
	write    TextfileWriter
	logger   zerolog.Logger
	name     string
}

// NewTextfileService creates a textfile exporter. A non-positive interval
// defaults to 15s.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewTextfileService(path string, interval time.Duration, write TextfileWriter, logger zerolog.Logger) *TextfileService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &TextfileService{
		path:     path,
		interval: interval,
		write:    write,
		logger:   logger.With().Str("service", "textfile").Logger(),
		name:     "textfile-service",
	}
}

// Serve implements the suture.Service interface. A write failure is
// returned so the supervisor restarts the exporter with backoff.
func (s *TextfileService) Serve(ctx context.Context) error {
	s.logger.Info().Str("path", s.path).Dur("interval", s.interval).Msg("textfile exporter starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.write(s.path); err != nil {
			s.logger.Error().Err(err).Str("path", s.path).Msg("metrics textfile write failed")
			return err
		}
		select {
		case <-ctx.Done():
			// Final export so the file reflects the last run.
			if err := s.write(s.path); err != nil {
				s.logger.Warn().Err(err).Msg("final metrics textfile write failed")
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// String returns the service name for logging.
func (s *TextfileService) String() string {
	return s.name
}
