// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	var statements []string
	switch d {
	case SQLite:
		statements = sqliteSchema
	case Postgres, PGX:
		statements = postgresSchema
	default:
		return fmt.Errorf("failed to create schema: %w: %q", ErrUnknownDialect, string(d))
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS question (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_text VARCHAR(200) NOT NULL,
    pub_date TIMESTAMP NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_question_pub_date ON question(pub_date)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS question (
    id BIGSERIAL PRIMARY KEY,
    question_text VARCHAR(200) NOT NULL,
    pub_date TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_question_pub_date ON question(pub_date)`,
}
