// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package services provides suture.Service wrappers for Shelfwise components.

# Available Services

HTTPServerService:
  - Runs *http.Server and drains it with Shutdown on cancel
  - http.ErrServerClosed is not reported as a failure

ConfigWatchService:
  - Holds an fsnotify watcher on the config file via config.WatchConfigFile
  - Calls the supplied callback on every write (the server reapplies LOG_LEVEL)
  - Releases the watcher when its context ends

CatalogReloadService:
  - Calls CatalogReloader.Reload on a fixed interval
  - A failed reload is logged and the previous catalog keeps serving
  - Returns suture.ErrDoNotRestart when the interval is zero

# Return Values

	ctx.Err()               -> shutdown requested
	suture.ErrDoNotRestart  -> service is finished for good
	any other error         -> supervisor restarts the service with backoff

# Testing

Each service takes its collaborator as an interface or function value
(HTTPServer, CatalogReloader, WatchFunc) so tests can drive it without
sockets or files.
*/
package services
