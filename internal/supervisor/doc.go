// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package supervisor provides process supervision for Shelfwise using suture v4.

# Overview

Long-running services are grouped under two child supervisors:

	RootSupervisor ("shelfwise")
	├── DataSupervisor ("data-layer")
	│   ├── ConfigWatchService (when a config file is present)
	│   └── CatalogReloadService (when DATA_RELOAD_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures on its own, so a watcher stuck in backoff does
not take the HTTP server down with it.

# Usage Example

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Configuration

TreeConfig mirrors suture.Spec. Zero fields take suture's defaults:
threshold 5, decay 30s, backoff 15s, and a 10s shutdown timeout.

# Logging

Supervisor events (service panics, terminations, backoff) are routed through
sutureslog into the slog adapter from internal/logging, so they land in the
same zerolog stream as the rest of the process.

# Testing

MockService is a suture.Service whose failures and return error can be
scripted. See tree_test.go.
*/
package supervisor
