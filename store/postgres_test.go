// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/store"
)

const (
	pgImage    = "postgres:16-alpine"
	pgDatabase = "polls"
	pgUser     = "polls"
	pgPassword = "polls"
)

// startPostgres runs a throwaway PostgreSQL container for the test and
// returns its connection string.
func startPostgres(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping PostgreSQL container in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		pgImage,
		testcontainers.WithCmd("postgres", "-c", "fsync=off"),
		postgres.WithDatabase(pgDatabase),
		postgres.WithUsername(pgUser),
		postgres.WithPassword(pgPassword),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "failed to start postgres container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	return dsn
}

// newPostgresStore opens a store through the given driver with a clean table
func newPostgresStore(t *testing.T, dsn, dbType string) store.Store {
	t.Helper()

	ctx := context.Background()
	conn, dialect, err := db.Open(ctx, dbType, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.ExecContext(ctx, "DROP TABLE IF EXISTS question")
	require.NoError(t, err)
	require.NoError(t, db.CreateSchema(ctx, conn, dialect))

	return store.NewSQLStore(conn, dialect)
}

func TestPostgresStore(t *testing.T) {
	dsn := startPostgres(t)

	for _, dbType := range []string{"postgres", "pgx"} {
		t.Run(dbType, func(t *testing.T) {
			runStoreSuite(t, func(t *testing.T) store.Store {
				return newPostgresStore(t, dsn, dbType)
			})
		})
	}
}
