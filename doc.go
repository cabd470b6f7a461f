// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls web application.

Polls publishes questions and lists the latest ones. A question carries a
publication date; questions dated in the future stay hidden until then.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run . serve

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run . serve -p 8080

# Managing Questions

	go run . migrate
	go run . question create --text "What's up?" --days -1
	go run . question list --all

# Configuration

All settings are optional for SQLite:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_URL (-d): Connection string or SQLite path (default: db.sqlite3)
  - DATABASE_TYPE (-t): sqlite, postgres or pgx (default: sqlite)
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output

Values may also come from a .env file (--env-file).

# Architecture

  - cli: cobra commands (serve, migrate, question)
  - router: Route definitions using Go 1.22+ routing, named routes
  - handlers: HTTP request handlers (index, detail)
  - views: Embedded HTML templates
  - store: Question queries and persistence
  - db: Connections, dialects and schema creation
  - middleware: Request logging, error pages
  - models: Domain types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
