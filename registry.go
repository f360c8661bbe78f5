/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package aliasstore

import (
	"context"

	"github.com/suparena/aliasstore/datastore"
	"github.com/suparena/aliasstore/storagemodels"
)

// Registry runs Create, Destroy and Search inside a backend's transaction
// boundary. It is safe for concurrent use when the backend is.
type Registry struct {
	backend datastore.Backend
}

// New returns a Registry over backend.
func New(backend datastore.Backend) *Registry {
	return &Registry{backend: backend}
}

// Create claims alias for caller. Either both index entries are written or neither.
func (r *Registry) Create(ctx context.Context, caller storagemodels.Address, alias string, avatarURL *string) (storagemodels.AliasRecord, error) {
	var record storagemodels.AliasRecord
	err := r.backend.Atomic(ctx, func(ctx context.Context, tx datastore.KVStore) error {
		var err error
		record, err = Create(ctx, tx, caller, alias, avatarURL)
		return err
	})
	if err != nil {
		return storagemodels.AliasRecord{}, err
	}
	return record, nil
}

// Destroy releases alias on behalf of caller.
func (r *Registry) Destroy(ctx context.Context, caller storagemodels.Address, alias string) error {
	return r.backend.Atomic(ctx, func(ctx context.Context, tx datastore.KVStore) error {
		return Destroy(ctx, tx, caller, alias)
	})
}

// Search resolves value on a read-only view of the backend.
func (r *Registry) Search(ctx context.Context, searchType, value string) (storagemodels.SearchResult, error) {
	var result storagemodels.SearchResult
	err := r.backend.View(ctx, func(ctx context.Context, store datastore.ReadOnlyKVStore) error {
		var err error
		result, err = Search(ctx, store, searchType, value)
		return err
	})
	if err != nil {
		return storagemodels.SearchResult{}, err
	}
	return result, nil
}

// Close releases the backend.
func (r *Registry) Close() error {
	return r.backend.Close()
}
