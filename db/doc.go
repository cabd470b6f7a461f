// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Backends

Three database types are supported; each maps to a registered driver:

  - sqlite (default): modernc.org/sqlite, pure Go
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib

Open parses the type, opens and pings the connection:

	conn, dialect, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

CreateSchema initializes the question table for the given dialect:

	if err := db.CreateSchema(ctx, conn, dialect); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for tables and indexes.

# Tables

  - question: id, question_text (max 200 chars), pub_date

pub_date is indexed; the index page filters and sorts on it.

# Placeholders

Queries are written with '?' placeholders. Dialect.Rebind converts them to
$1, $2, ... for the PostgreSQL drivers.
*/
package db
