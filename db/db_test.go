// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		input    string
		expected Dialect
		wantErr  bool
	}{
		{"", SQLite, false},
		{"sqlite", SQLite, false},
		{"SQLite3", SQLite, false},
		{"postgres", Postgres, false},
		{" postgresql ", Postgres, false},
		{"pgx", PGX, false},
		{"mysql", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			d, err := ParseDialect(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownDialect)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d)
		})
	}
}

func TestRebind(t *testing.T) {
	query := "SELECT id FROM question WHERE pub_date <= ? AND id = ?"

	assert.Equal(t, query, SQLite.Rebind(query))
	assert.Equal(t, "SELECT id FROM question WHERE pub_date <= $1 AND id = $2", Postgres.Rebind(query))
	assert.Equal(t, "SELECT id FROM question WHERE pub_date <= $1 AND id = $2", PGX.Rebind(query))
	assert.Equal(t, "SELECT 1", Postgres.Rebind("SELECT 1"))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "polls.db?_time_format=sqlite", sqliteDSN("polls.db"))
	assert.Equal(t, "file:polls.db?mode=rwc&_time_format=sqlite", sqliteDSN("file:polls.db?mode=rwc"))
	assert.Equal(t, "polls.db?_time_format=sqlite", sqliteDSN("polls.db?_time_format=sqlite"))
}

func TestOpenAndCreateSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "polls.db")

	conn, dialect, err := Open(ctx, "sqlite", path)
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, SQLite, dialect)

	// Idempotent
	require.NoError(t, CreateSchema(ctx, conn, dialect))
	require.NoError(t, CreateSchema(ctx, conn, dialect))

	var count int
	err = conn.QueryRow("SELECT COUNT(*) FROM question").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestOpenUnknownType(t *testing.T) {
	_, _, err := Open(context.Background(), "oracle", "whatever")
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func TestCreateSchemaUnknownDialect(t *testing.T) {
	err := CreateSchema(context.Background(), nil, Dialect("oracle"))
	assert.ErrorIs(t, err, ErrUnknownDialect)
}
