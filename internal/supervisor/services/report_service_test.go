// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestTextfileService_WritesUntilCanceled(t *testing.T) {
	t.Parallel()

	var writes atomic.Int32
	svc := NewTextfileService("/tmp/tagmine.prom", 10*time.Millisecond, func(path string) error {
		if path != "/tmp/tagmine.prom" {
			t.Errorf("path = %q", path)
		}
		writes.Add(1)
		return nil
	}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want DeadlineExceeded", err)
	}
	if writes.Load() < 3 {
		t.Errorf("writes = %d, want at least 3", writes.Load())
	}
}

func TestTextfileService_ReturnsWriteError(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("disk full")
	svc := NewTextfileService("out.prom", time.Hour, func(string) error { return writeErr }, zerolog.Nop())

	if err := svc.Serve(context.Background()); !errors.Is(err, writeErr) {
		t.Errorf("Serve() = %v, want %v", err, writeErr)
	}
	if svc.String() != "textfile-service" {
		t.Errorf("String() = %q", svc.String())
	}
}
