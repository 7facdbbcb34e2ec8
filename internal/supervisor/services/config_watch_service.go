// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/shelfwise/internal/config"
)

// WatchFunc starts watching path and returns a function that stops it.
type WatchFunc func(path string, onChange func()) (stop func() error, err error)

// ConfigWatchService keeps a config file watcher alive for the lifetime of
// its context and invokes onChange when the file is written.
type ConfigWatchService struct {
	path     string
	onChange func()
	watch    WatchFunc
	logger   zerolog.Logger
	name     string
}

// NewConfigWatchService watches path with config.WatchConfigFile.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewConfigWatchService(path string, onChange func(), logger zerolog.Logger) *ConfigWatchService {
	return &ConfigWatchService{
		path:     path,
		onChange: onChange,
		watch:    config.WatchConfigFile,
		logger:   logger.With().Str("service", "config-watch").Str("path", path).Logger(),
		name:     "config-watch",
	}
}

// WithWatchFunc replaces the file watcher, mainly for tests.
func (s *ConfigWatchService) WithWatchFunc(fn WatchFunc) *ConfigWatchService {
	s.watch = fn
	return s
}

// Serve implements suture.Service.
func (s *ConfigWatchService) Serve(ctx context.Context) error {
	stop, err := s.watch(s.path, func() {
		s.logger.Info().Msg("config file changed")
		s.onChange()
	})
	if err != nil {
		return fmt.Errorf("watch config %s: %w", s.path, err)
	}

	s.logger.Debug().Msg("watching config file")
	<-ctx.Done()

	if err := stop(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to stop config watcher")
	}
	return ctx.Err()
}

// String names the service in supervisor events.
func (s *ConfigWatchService) String() string {
	return s.name
}
