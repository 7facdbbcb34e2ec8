// Shelfwise - Non-Personalized Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package main is the entry point for the Shelfwise server.

Shelfwise serves non-personalized book rankings (popular, trending,
weighted, Bayesian, genre and activity lists) over a Goodreads extract
loaded into DuckDB at startup.

# Application Architecture

	RootSupervisor ("shelfwise")
	├── DataSupervisor ("data-layer")
	│   ├── ConfigWatchService (config file present)
	│   └── CatalogReloadService (DATA_RELOAD_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Database: DuckDB, in memory by default
 4. Catalog: every parquet/csv/json file in DATA_DIR becomes a dataset
 5. Recommender: ranking defaults from RECOMMEND_* variables
 6. HTTP: chi router with CORS, httprate and Prometheus middleware
 7. Supervisor tree: suture v4, served until SIGINT or SIGTERM

# Example Usage

	export DATA_DIR=./Data/MainData
	export LOG_FORMAT=console
	./shelfwise

	curl 'localhost:8417/api/v1/recommendations?type=popular&n=5'
	curl 'localhost:8417/api/v1/recommendations?type=genre&genre=fantasy&method=bayesian'

# Hot Reload

Writing the config file re-applies LOG_LEVEL without a restart. With
DATA_RELOAD_INTERVAL set, the data directory is re-read on that schedule
and the new catalog replaces the old one once it loads cleanly.
*/
package main
