// SPDX-License-Identifier: MIT
// Package: graphpad/persist
//
// sqlite.go - durable Gateway over a single-table SQLite key/value store.

package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

const upsertSQL = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// SQLiteGateway stores the encoded State as one row of the kv table.
type SQLiteGateway struct {
	db  *sql.DB
	key string
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path with
// journal_mode=WAL, busy_timeout=10000 and synchronous=NORMAL, and ensures
// the kv table exists. ":memory:" is accepted and pinned to one connection,
// since every connection to ":memory:" is a separate database.
func OpenSQLite(path, key string) (*SQLiteGateway, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("persist: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("persist: open: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=10000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("persist: %s: %w", p, err)
		}
	}

	g, err := NewSQLiteGateway(db, key)
	if err != nil {
		db.Close()
		return nil, err
	}

	return g, nil
}

// NewSQLiteGateway wraps an already opened database. An empty key selects
// DefaultKey. The caller keeps ownership of db unless it calls Close.
func NewSQLiteGateway(db *sql.DB, key string) (*SQLiteGateway, error) {
	if key == "" {
		key = DefaultKey
	}
	if _, err := db.Exec(kvSchema); err != nil {
		return nil, fmt.Errorf("persist: create schema: %w", err)
	}

	return &SQLiteGateway{db: db, key: key, now: time.Now}, nil
}

// Save upserts the encoded state under the gateway key.
func (g *SQLiteGateway) Save(ctx context.Context, st State) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}

	_, err = g.db.ExecContext(ctx, upsertSQL, g.key, string(data), g.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("persist: save %q: %w", g.key, err)
	}

	return nil
}

// Load reads and decodes the state stored under the gateway key.
func (g *SQLiteGateway) Load(ctx context.Context) (State, error) {
	var raw string
	err := g.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, g.key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return State{}, ErrNotFound
	}
	if err != nil {
		return State{}, fmt.Errorf("persist: load %q: %w", g.key, err)
	}

	return Decode([]byte(raw))
}

// Put stores a raw payload verbatim under the gateway key, bypassing Encode.
func (g *SQLiteGateway) Put(ctx context.Context, raw []byte) error {
	_, err := g.db.ExecContext(ctx, upsertSQL, g.key, string(raw), g.now().UnixMilli())

	return err
}

// Ping verifies the database is reachable.
func (g *SQLiteGateway) Ping(ctx context.Context) error {
	return g.db.PingContext(ctx)
}

// Close closes the underlying database.
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}
