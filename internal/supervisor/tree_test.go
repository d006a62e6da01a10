// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// waitFor polls cond every 10ms until it holds or timeout passes.
func waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.Root() == nil {
			t.Fatal("root supervisor should not be nil")
		}
		if tree.config != DefaultTreeConfig() {
			t.Errorf("config = %+v, want defaults", tree.config)
		}
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 2,
			FailureBackoff:   time.Second,
		})
		if tree.config.FailureThreshold != 2 || tree.config.FailureBackoff != time.Second {
			t.Errorf("config = %+v", tree.config)
		}
		if tree.config.ShutdownTimeout != 10*time.Second {
			t.Errorf("ShutdownTimeout = %v, want 10s", tree.config.ShutdownTimeout)
		}
	})
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureBackoff:  50 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})

	miningSvc := NewMockService("mining")
	reportSvc := NewMockService("report")
	tree.AddMiningService(miningSvc)
	tree.AddReportingService(reportSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	if !waitFor(time.Second, func() bool { return miningSvc.StartCount() >= 1 && reportSvc.StartCount() >= 1 }) {
		t.Error("services in both layers should start")
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not shut down in time")
	}

	if miningSvc.StopCount() != miningSvc.StartCount() {
		t.Errorf("mining service stopped %d of %d runs", miningSvc.StopCount(), miningSvc.StartCount())
	}
	report, err := tree.UnstoppedServiceReport()
	if err != nil || len(report) != 0 {
		t.Errorf("UnstoppedServiceReport() = %v, %v", report, err)
	}
}

func TestSupervisorTreeFailureIsolation(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  500 * time.Millisecond,
	})

	failing := NewMockService("failing-exporter")
	failing.SetFailCount(3)
	stable := NewMockService("stable-miner")

	tree.AddReportingService(failing)
	tree.AddMiningService(stable)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	if !waitFor(800*time.Millisecond, func() bool { return failing.StartCount() >= 4 }) {
		t.Errorf("failing service restarted %d times, want at least 4 starts", failing.StartCount())
	}
	if stable.StartCount() != 1 {
		t.Errorf("stable service started %d times, want 1", stable.StartCount())
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(2 * time.Second):
		t.Error("tree did not shut down")
	}
}

func TestSupervisorTreeRemoveReportingService(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: 500 * time.Millisecond})

	svc := NewMockService("removable")
	token := tree.AddReportingService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	if !waitFor(time.Second, func() bool { return svc.StartCount() >= 1 }) {
		t.Fatal("service was not started")
	}
	if err := tree.RemoveReportingService(token); err != nil {
		t.Fatalf("RemoveReportingService() error = %v", err)
	}
	if !waitFor(time.Second, func() bool { return svc.StopCount() >= 1 }) {
		t.Error("removed service was not stopped")
	}

	cancel()
	<-errCh
}

func TestDefaultTreeConfig(t *testing.T) {
	config := DefaultTreeConfig()

	if config.FailureThreshold != 5.0 {
		t.Errorf("expected FailureThreshold 5.0, got %f", config.FailureThreshold)
	}
	if config.FailureDecay != 30.0 {
		t.Errorf("expected FailureDecay 30.0, got %f", config.FailureDecay)
	}
	if config.FailureBackoff != 15*time.Second {
		t.Errorf("expected FailureBackoff 15s, got %v", config.FailureBackoff)
	}
	if config.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected ShutdownTimeout 10s, got %v", config.ShutdownTimeout)
	}
}
