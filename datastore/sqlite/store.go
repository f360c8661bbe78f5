/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/suparena/aliasstore/datastore"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
    key   BLOB PRIMARY KEY,
    value BLOB NOT NULL
) WITHOUT ROWID;
`

// Store persists the flat key space in a single SQLite table.
//
// Writes go through writeDB, one connection opening BEGIN IMMEDIATE
// transactions. Reads go through readDB, whose deferred transactions see a WAL
// snapshot and never take the write lock. An in-memory database has a single
// pool serving both.
type Store struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

var _ datastore.Backend = (*Store)(nil)

const (
	pragmas    = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	writeOpts  = pragmas + "&_txlock=immediate"
	readOpts   = "_pragma=busy_timeout(5000)&_pragma=query_only(1)"
	memoryPath = ":memory:"
)

// Open opens (creating if needed) the SQLite database at path. Use ":memory:"
// for a private in-memory database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	base := path
	if path != memoryPath {
		base = filepath.Clean(path)
	}

	writeDB, err := sql.Open("sqlite", base+"?"+writeOpts)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer connection: write transactions are serialized and an in-memory
	// database is shared.
	writeDB.SetMaxOpenConns(1)

	if err := writeDB.Ping(); err != nil {
		_ = writeDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := writeDB.Exec(schema); err != nil {
		_ = writeDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	readDB := writeDB
	if path != memoryPath {
		readDB, err = sql.Open("sqlite", base+"?"+readOpts)
		if err != nil {
			_ = writeDB.Close()
			return nil, fmt.Errorf("open sqlite read db: %w", err)
		}
		if err := readDB.Ping(); err != nil {
			_ = readDB.Close()
			_ = writeDB.Close()
			return nil, fmt.Errorf("ping sqlite read db: %w", err)
		}
	}

	log.Printf("SQLite store opened at %s", path)
	return &Store{writeDB: writeDB, readDB: readDB}, nil
}

// Close closes both SQLite handles.
func (s *Store) Close() error {
	if s == nil || s.writeDB == nil {
		return nil
	}
	var readErr error
	if s.readDB != nil && s.readDB != s.writeDB {
		readErr = s.readDB.Close()
	}
	return errors.Join(s.writeDB.Close(), readErr)
}

// Get reads key outside any transaction.
func (s *Store) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	if s == nil || s.readDB == nil {
		return nil, false, fmt.Errorf("storage is not configured")
	}
	return get(ctx, s.readDB, key)
}

// Atomic runs fn inside one write transaction, committed only if fn returns nil.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, tx datastore.KVStore) error) error {
	if s == nil || s.writeDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	// Returns sql.ErrTxDone after Commit; releases the connection if fn panics.
	defer tx.Rollback()

	if err := fn(ctx, &txStore{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// View runs fn inside a deferred read transaction that is always rolled back.
// Views run concurrently with each other and with Atomic.
func (s *Store) View(ctx context.Context, fn func(ctx context.Context, r datastore.ReadOnlyKVStore) error) error {
	if s == nil || s.readDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.readDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin read transaction: %w", err)
	}
	defer tx.Rollback()

	return fn(ctx, readOnlyTx{tx: tx})
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func get(ctx context.Context, q queryer, key []byte) ([]byte, bool, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get key: %w", err)
	}
	return value, true, nil
}

// readOnlyTx is the view handed to View callbacks.
type readOnlyTx struct {
	tx *sql.Tx
}

func (r readOnlyTx) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	return get(ctx, r.tx, key)
}

// txStore is the KVStore handed to Atomic callbacks.
type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	return get(ctx, t.tx, key)
}

func (t *txStore) Set(ctx context.Context, key, value []byte) error {
	_, err := t.tx.ExecContext(
		ctx,
		`INSERT INTO kv_entries (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key,
		value,
	)
	if err != nil {
		return fmt.Errorf("set key: %w", err)
	}
	return nil
}

func (t *txStore) Delete(ctx context.Context, key []byte) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete key: %w", err)
	}
	return nil
}
