/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.Backend for testing
package mock

import (
	"bytes"
	"context"
	"sync"

	"github.com/suparena/aliasstore/datastore"
)

// DataStore is an in-memory datastore.Backend for testing. It also implements
// datastore.KVStore so tests can seed data or drive the registry core directly.
type DataStore struct {
	// txMu serializes Atomic calls; mu guards data.
	txMu sync.Mutex
	mu   sync.RWMutex
	data map[string][]byte

	getError    error
	commitError error
	setFunc     func(key, value []byte) error
	deleteFunc  func(key []byte) error
}

var _ datastore.Backend = (*DataStore)(nil)
var _ datastore.KVStore = (*DataStore)(nil)

// New creates a new mock DataStore
func New() *DataStore {
	return &DataStore{
		data: make(map[string][]byte),
	}
}

// WithGetError makes Get operations return an error
func (m *DataStore) WithGetError(err error) *DataStore {
	m.getError = err
	return m
}

// WithSetError makes Set operations return an error
func (m *DataStore) WithSetError(err error) *DataStore {
	return m.WithSetFunc(func([]byte, []byte) error { return err })
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore) WithDeleteError(err error) *DataStore {
	return m.WithDeleteFunc(func([]byte) error { return err })
}

// WithSetFunc installs a hook called before every Set; a non-nil result fails the Set
func (m *DataStore) WithSetFunc(f func(key, value []byte) error) *DataStore {
	m.setFunc = f
	return m
}

// WithDeleteFunc installs a hook called before every Delete; a non-nil result fails the Delete
func (m *DataStore) WithDeleteFunc(f func(key []byte) error) *DataStore {
	m.deleteFunc = f
	return m
}

// WithCommitError makes Atomic fail after fn succeeds, discarding its writes
func (m *DataStore) WithCommitError(err error) *DataStore {
	m.commitError = err
	return m
}

// Get retrieves the value stored under key
func (m *DataStore) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if m.getError != nil {
		return nil, false, m.getError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, exists := m.data[string(key)]
	if !exists {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

// Set stores value under key immediately, outside any transaction
func (m *DataStore) Set(ctx context.Context, key, value []byte) error {
	if err := m.checkSet(ctx, key, value); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[string(key)] = bytes.Clone(value)
	return nil
}

// Delete removes key immediately, outside any transaction
func (m *DataStore) Delete(ctx context.Context, key []byte) error {
	if err := m.checkDelete(ctx, key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, string(key))
	return nil
}

func (m *DataStore) checkSet(ctx context.Context, key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.setFunc != nil {
		return m.setFunc(key, value)
	}
	return nil
}

func (m *DataStore) checkDelete(ctx context.Context, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.deleteFunc != nil {
		return m.deleteFunc(key)
	}
	return nil
}

// Atomic runs fn against a write overlay and applies its writes only if fn and
// the commit succeed. Concurrent Atomic calls run one at a time.
func (m *DataStore) Atomic(ctx context.Context, fn func(ctx context.Context, tx datastore.KVStore) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	tx := &txStore{m: m, overlay: datastore.NewOverlay(m)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if m.commitError != nil {
		return m.commitError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range tx.overlay.Writes() {
		if w.Delete {
			delete(m.data, string(w.Key))
			continue
		}
		m.data[string(w.Key)] = w.Value
	}
	return nil
}

// View runs fn while holding the read lock, so no commit is applied in the middle of fn
func (m *DataStore) View(ctx context.Context, fn func(ctx context.Context, r datastore.ReadOnlyKVStore) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fn(ctx, snapshot{m: m})
}

// Close is a no-op
func (m *DataStore) Close() error {
	return nil
}

// snapshot reads the map without locking; View holds the read lock for it
type snapshot struct {
	m *DataStore
}

func (s snapshot) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if s.m.getError != nil {
		return nil, false, s.m.getError
	}
	v, exists := s.m.data[string(key)]
	if !exists {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

// txStore routes a transaction's writes through the injected hooks into the overlay
type txStore struct {
	m       *DataStore
	overlay *datastore.Overlay
}

func (t *txStore) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	return t.overlay.Get(ctx, key)
}

func (t *txStore) Set(ctx context.Context, key, value []byte) error {
	if err := t.m.checkSet(ctx, key, value); err != nil {
		return err
	}
	return t.overlay.Set(ctx, key, value)
}

func (t *txStore) Delete(ctx context.Context, key []byte) error {
	if err := t.m.checkDelete(ctx, key); err != nil {
		return err
	}
	return t.overlay.Delete(ctx, key)
}

// Helper methods for testing

// SetData directly sets the internal data map (for testing)
func (m *DataStore) SetData(data map[string][]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte, len(data))
	for k, v := range data {
		m.data[k] = bytes.Clone(v)
	}
}

// GetData returns a copy of the internal data map (for testing)
func (m *DataStore) GetData() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string][]byte, len(m.data))
	for k, v := range m.data {
		result[k] = bytes.Clone(v)
	}
	return result
}

// Count returns the number of stored keys
func (m *DataStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte)
}
