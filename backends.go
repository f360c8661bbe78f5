/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package aliasstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/aliasstore/config"
	"github.com/suparena/aliasstore/datastore"
	"github.com/suparena/aliasstore/datastore/ddb"
	"github.com/suparena/aliasstore/datastore/mock"
	"github.com/suparena/aliasstore/datastore/sqlite"
)

// Opener constructs a backend from configuration.
type Opener func(ctx context.Context, cfg config.Config) (datastore.Backend, error)

// Backends is a set of named backend openers.
type Backends interface {
	// Register adds an opener under name (for example, "sqlite").
	Register(name string, open Opener) error
	// Open constructs the backend named by cfg.Backend.
	Open(ctx context.Context, cfg config.Config) (datastore.Backend, error)
	// Names lists the registered backend names in sorted order.
	Names() []string
}

// backendSet is a thread-safe implementation of Backends.
type backendSet struct {
	mu      sync.RWMutex
	openers map[string]Opener
}

// NewBackends returns an empty Backends.
func NewBackends() Backends {
	return &backendSet{
		openers: make(map[string]Opener),
	}
}

// DefaultBackends returns the memory, sqlite and dynamodb openers.
func DefaultBackends() Backends {
	b := NewBackends()
	mustRegister(b, config.BackendMemory, openMemory)
	mustRegister(b, config.BackendSQLite, openSQLite)
	mustRegister(b, config.BackendDynamoDB, openDynamoDB)
	return b
}

// mustRegister panics if name is already taken in b.
func mustRegister(b Backends, name string, open Opener) {
	if err := b.Register(name, open); err != nil {
		panic(err)
	}
}

func (b *backendSet) Register(name string, open Opener) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.openers[name]; exists {
		return fmt.Errorf("backend %q already registered", name)
	}
	b.openers[name] = open
	return nil
}

func (b *backendSet) Open(ctx context.Context, cfg config.Config) (datastore.Backend, error) {
	b.mu.RLock()
	open, exists := b.openers[cfg.Backend]
	b.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("backend %q not registered", cfg.Backend)
	}
	backend, err := open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	return backend, nil
}

func (b *backendSet) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.openers))
	for name := range b.openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func openMemory(ctx context.Context, cfg config.Config) (datastore.Backend, error) {
	return mock.New(), nil
}

func openSQLite(ctx context.Context, cfg config.Config) (datastore.Backend, error) {
	store, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func openDynamoDB(ctx context.Context, cfg config.Config) (datastore.Backend, error) {
	d := cfg.DynamoDB
	store, err := ddb.NewDynamodbDataStore(d.AccessKey, d.SecretKey, d.Region, d.Table, d.Endpoint)
	if err != nil {
		return nil, err
	}
	return store, nil
}
