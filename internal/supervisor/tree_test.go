// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config TreeConfig
		want   TreeConfig
	}{
		{
			name:   "zero config takes defaults",
			config: TreeConfig{},
			want:   DefaultTreeConfig(),
		},
		{
			name: "explicit values are kept",
			config: TreeConfig{
				FailureThreshold: 3,
				FailureDecay:     10,
				FailureBackoff:   time.Second,
				ShutdownTimeout:  2 * time.Second,
			},
			want: TreeConfig{
				FailureThreshold: 3,
				FailureDecay:     10,
				FailureBackoff:   time.Second,
				ShutdownTimeout:  2 * time.Second,
			},
		},
		{
			name:   "partial config fills the rest",
			config: TreeConfig{FailureBackoff: time.Millisecond},
			want: TreeConfig{
				FailureThreshold: 5,
				FailureDecay:     30,
				FailureBackoff:   time.Millisecond,
				ShutdownTimeout:  10 * time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := NewSupervisorTree(quietLogger(), tt.config)
			if err != nil {
				t.Fatalf("NewSupervisorTree() error = %v", err)
			}
			if tree.Root() == nil {
				t.Fatal("root supervisor should not be nil")
			}
			if tree.config != tt.want {
				t.Errorf("config = %+v, want %+v", tree.config, tt.want)
			}
		})
	}
}

func TestSupervisorTree_NilLogger(t *testing.T) {
	t.Parallel()

	tree, err := NewSupervisorTree(nil, TreeConfig{})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}
	if tree.logger == nil {
		t.Error("logger should fall back to slog.Default()")
	}
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("starts both layers and stops on cancel", func(t *testing.T) {
		t.Parallel()

		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureBackoff:  100 * time.Millisecond,
			ShutdownTimeout: time.Second,
		})
		if err != nil {
			t.Fatalf("NewSupervisorTree() error = %v", err)
		}

		dataSvc := NewMockService("config-watcher")
		apiSvc := NewMockService("http-server")
		tree.AddDataService(dataSvc)
		tree.AddAPIService(apiSvc)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := tree.ServeBackground(ctx)

		waitFor(t, func() bool { return dataSvc.StartCount() >= 1 && apiSvc.StartCount() >= 1 })
		cancel()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("tree did not shut down in time")
		}

		if dataSvc.StopCount() != dataSvc.StartCount() {
			t.Errorf("data service stops = %d, starts = %d", dataSvc.StopCount(), dataSvc.StartCount())
		}
		report, err := tree.UnstoppedServiceReport()
		if err != nil {
			t.Fatalf("UnstoppedServiceReport() error = %v", err)
		}
		if len(report) != 0 {
			t.Errorf("unstopped services = %v, want none", report)
		}
	})

	t.Run("Serve returns when context expires", func(t *testing.T) {
		t.Parallel()

		tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		errCh := make(chan error, 1)
		go func() { errCh <- tree.Serve(ctx) }()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Serve did not return")
		}
	})
}

func TestSupervisorTreeFailureIsolation(t *testing.T) {
	t.Parallel()

	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	failing := NewMockService("flaky-watcher")
	failing.SetFailCount(2)
	stable := NewMockService("http-server")

	tree.AddDataService(failing)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	waitFor(t, func() bool { return failing.StartCount() >= 3 })

	if stable.StartCount() != 1 {
		t.Errorf("api service starts = %d, want 1", stable.StartCount())
	}

	cancel()
	<-errCh
}

func TestSupervisorTree_RemoveDataService(t *testing.T) {
	t.Parallel()

	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

	svc := NewMockService("config-watcher")
	token := tree.AddDataService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	waitFor(t, func() bool { return svc.StartCount() >= 1 })

	if err := tree.RemoveDataService(token); err != nil {
		t.Fatalf("RemoveDataService() error = %v", err)
	}
	waitFor(t, func() bool { return svc.StopCount() >= 1 })

	cancel()
	<-errCh
}

func TestDefaultTreeConfig(t *testing.T) {
	t.Parallel()

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

// waitFor polls cond until it holds or two seconds pass.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within 2s")
}
