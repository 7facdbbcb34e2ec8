// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package supervisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*MockService)(nil)

func TestMockService(t *testing.T) {
	t.Parallel()

	t.Run("runs until context expires", func(t *testing.T) {
		t.Parallel()

		svc := NewMockService("watcher")
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
		}
		if svc.StartCount() != 1 || svc.StopCount() != 1 {
			t.Errorf("starts/stops = %d/%d, want 1/1", svc.StartCount(), svc.StopCount())
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			err  error
		}{
			{"plain error", errors.New("boom")},
			{"do not restart", suture.ErrDoNotRestart},
			{"terminate tree", suture.ErrTerminateSupervisorTree},
		}
		for _, tt := range tests {
			svc := NewMockService(tt.name)
			svc.SetError(tt.err)
			if err := svc.Serve(context.Background()); !errors.Is(err, tt.err) {
				t.Errorf("%s: Serve() = %v, want %v", tt.name, err, tt.err)
			}
		}
	})

	t.Run("fails N times then blocks", func(t *testing.T) {
		t.Parallel()

		svc := NewMockService("flaky")
		svc.SetFailCount(2)

		for i := 0; i < 2; i++ {
			if err := svc.Serve(context.Background()); !errors.Is(err, errSimulatedFailure) {
				t.Fatalf("call %d: Serve() = %v, want simulated failure", i+1, err)
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("third call: Serve() = %v, want context.DeadlineExceeded", err)
		}
		if svc.StartCount() != 3 {
			t.Errorf("StartCount() = %d, want 3", svc.StartCount())
		}
	})

	t.Run("String returns service name", func(t *testing.T) {
		t.Parallel()

		if got := NewMockService("http-server").String(); got != "http-server" {
			t.Errorf("String() = %q, want http-server", got)
		}
	})
}

func TestSupervisor_DoNotRestart(t *testing.T) {
	t.Parallel()

	svc := NewMockService("one-shot")
	svc.SetError(suture.ErrDoNotRestart)

	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureBackoff:  10 * time.Millisecond,
		ShutdownTimeout: 100 * time.Millisecond,
	})
	tree.AddDataService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	waitFor(t, func() bool { return svc.StopCount() >= 1 })
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-errCh

	if svc.StartCount() != 1 {
		t.Errorf("StartCount() = %d, want 1 for ErrDoNotRestart", svc.StartCount())
	}
}
