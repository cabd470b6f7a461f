// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect names a supported database backend. Its value doubles as the
// database/sql driver name.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
	PGX      Dialect = "pgx"
)

var ErrUnknownDialect = errors.New("unknown database type")

// ParseDialect maps a configured database type to a Dialect
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql":
		return Postgres, nil
	case "pgx":
		return PGX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDialect, s)
}

// Rebind rewrites '?' placeholders into the dialect's bind syntax.
// Queries are written with '?' and rebound once per dialect.
func (d Dialect) Rebind(query string) string {
	if d == SQLite {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// Open connects to the database described by dbType and url and verifies
// the connection.
func Open(ctx context.Context, dbType, url string) (*sql.DB, Dialect, error) {
	d, err := ParseDialect(dbType)
	if err != nil {
		return nil, "", err
	}

	dsn := url
	if d == SQLite {
		dsn = sqliteDSN(url)
	}

	conn, err := sql.Open(string(d), dsn)
	if err != nil {
		return nil, "", fmt.Errorf("database connection failed: %w", err)
	}

	// SQLite serialises writers; a single connection avoids SQLITE_BUSY.
	if d == SQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, "", fmt.Errorf("database ping failed: %w", err)
	}

	return conn, d, nil
}

// sqliteDSN makes the driver store timestamps in SQLite's own text format,
// which sorts chronologically for UTC values.
func sqliteDSN(url string) string {
	if strings.Contains(url, "_time_format=") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_time_format=sqlite"
}
