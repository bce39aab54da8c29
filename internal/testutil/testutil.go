//-------------------------------------------------------------------------
//
// Retail Analytics Dashboard
//
// Portions copyright (c) 2025 - 2026, Thant Thiha
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package testutil provides scratch Postgres databases for integration
// tests.
package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultConnString is the admin connection tests reach for when
// RETAIL_TEST_CONN is unset. URL form only; the scratch database name
// is spliced into the path.
const DefaultConnString = "postgres://postgres@localhost:5432/postgres"

const scratchPrefix = "retail_test_"

// ScratchDB creates a uniquely named scratch database, connects to it,
// and returns the pool together with the scratch connection string.
// The test is skipped when no server answers on the admin connection.
// Teardown runs via t.Cleanup: the pool is closed and the database
// dropped, except after a failed test, where the database is kept for
// inspection.
func ScratchDB(t *testing.T, name string) (*pgxpool.Pool, string) {
	t.Helper()

	base := os.Getenv("RETAIL_TEST_CONN")
	if base == "" {
		base = DefaultConnString
	}
	if !reachable(base) {
		t.Skip("PostgreSQL not available, skipping integration test")
	}

	suffix := make([]byte, 8)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("Failed to generate scratch database name: %v", err)
	}
	dbName := scratchPrefix + name + "_" + hex.EncodeToString(suffix)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, base)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer admin.Close()

	if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
		t.Fatalf("Failed to drop existing scratch database: %v", err)
	}
	if _, err := admin.Exec(ctx, "CREATE DATABASE "+dbName); err != nil {
		t.Fatalf("Failed to create scratch database: %v", err)
	}
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("Test failed - keeping database %s for diagnostics", dbName)
			return
		}
		dropDB(t, base, dbName)
	})

	connStr, err := withDatabase(base, dbName)
	if err != nil {
		t.Fatalf("Failed to build scratch connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("Failed to connect to scratch database: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool, connStr
}

func reachable(connStr string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return false
	}
	defer pool.Close()

	return pool.Ping(ctx) == nil
}

// withDatabase swaps the database path of a URL-form connection string,
// keeping credentials, host, and query parameters.
func withDatabase(connStr, dbName string) (string, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" {
		return "", fmt.Errorf("connection string %q is not in URL form", connStr)
	}
	u.Path = "/" + dbName
	return u.String(), nil
}

func dropDB(t *testing.T, base, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, base)
	if err != nil {
		t.Logf("Warning: Failed to connect to drop scratch database: %v", err)
		return
	}
	defer admin.Close()

	// Stragglers keep DROP DATABASE from acquiring the lock.
	_, _ = admin.Exec(ctx, fmt.Sprintf(`
        SELECT pg_terminate_backend(pid)
        FROM pg_stat_activity
        WHERE datname = '%s' AND pid <> pg_backend_pid()
    `, dbName))

	if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
		t.Logf("Warning: Failed to drop scratch database: %v", err)
	}
}
