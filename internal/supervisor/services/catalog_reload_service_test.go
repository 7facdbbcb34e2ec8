// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

type mockReloader struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *mockReloader) Reload(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("reload context has no deadline")
	}
	return m.err
}

func (m *mockReloader) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ suture.Service = (*CatalogReloadService)(nil)

func TestCatalogReloadService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewCatalogReloadService(&mockReloader{}, CatalogReloadConfig{Interval: time.Minute}, zerolog.Nop())
	if svc.config.Timeout != defaultReloadTimeout {
		t.Errorf("Timeout = %v, want %v", svc.config.Timeout, defaultReloadTimeout)
	}
	if svc.String() != "catalog-reload" {
		t.Errorf("String() = %q, want catalog-reload", svc.String())
	}
}

func TestCatalogReloadService_Disabled(t *testing.T) {
	t.Parallel()

	reloader := &mockReloader{}
	svc := NewCatalogReloadService(reloader, CatalogReloadConfig{}, zerolog.Nop())

	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("Serve() = %v, want suture.ErrDoNotRestart", err)
	}
	if reloader.callCount() != 0 {
		t.Errorf("Reload calls = %d, want 0", reloader.callCount())
	}
}

func TestCatalogReloadService_Serve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"successful reloads", nil},
		{"failed reloads keep running", errors.New("parquet file truncated")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reloader := &mockReloader{err: tt.err}
			svc := NewCatalogReloadService(reloader, CatalogReloadConfig{
				Interval: 10 * time.Millisecond,
				Timeout:  time.Second,
			}, zerolog.Nop())

			ctx, cancel := context.WithCancel(context.Background())
			errCh := make(chan error, 1)
			go func() { errCh <- svc.Serve(ctx) }()

			deadline := time.Now().Add(2 * time.Second)
			for reloader.callCount() < 2 && time.Now().Before(deadline) {
				time.Sleep(5 * time.Millisecond)
			}
			cancel()

			if err := <-errCh; !errors.Is(err, context.Canceled) {
				t.Errorf("Serve() = %v, want context.Canceled", err)
			}
			if reloader.callCount() < 2 {
				t.Errorf("Reload calls = %d, want at least 2", reloader.callCount())
			}
		})
	}
}
