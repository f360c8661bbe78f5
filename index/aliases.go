/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package index

import (
	"context"

	"github.com/suparena/aliasstore/datastore"
	"github.com/suparena/aliasstore/storagemodels"
)

// AliasReader looks up alias records. It is built from a read-only store and
// cannot mutate the index.
type AliasReader struct {
	store datastore.ReadOnlyKVStore
}

// NewAliasReader scopes store to the alias namespace.
func NewAliasReader(store datastore.ReadOnlyKVStore) *AliasReader {
	return &AliasReader{
		store: datastore.NewReadOnlyPrefixed(store, storagemodels.AliasesNamespace),
	}
}

// Get returns the record claimed under key, or nil if the alias is unclaimed.
func (r *AliasReader) Get(ctx context.Context, key storagemodels.AliasKey) (*storagemodels.AliasRecord, error) {
	return datastore.MayLoad[storagemodels.AliasRecord](ctx, r.store, key)
}

// AliasWriter reads and mutates the alias index.
type AliasWriter struct {
	AliasReader
	store datastore.KVStore
}

// NewAliasWriter scopes store to the alias namespace.
func NewAliasWriter(store datastore.KVStore) *AliasWriter {
	prefixed := datastore.NewPrefixed(store, storagemodels.AliasesNamespace)
	return &AliasWriter{
		AliasReader: AliasReader{store: prefixed},
		store:       prefixed,
	}
}

// Set stores record under key, replacing any existing record.
func (w *AliasWriter) Set(ctx context.Context, key storagemodels.AliasKey, record storagemodels.AliasRecord) error {
	return datastore.Save(ctx, w.store, key, record)
}

// Remove deletes the record under key. It is a no-op if the alias is unclaimed.
func (w *AliasWriter) Remove(ctx context.Context, key storagemodels.AliasKey) error {
	return datastore.Remove(ctx, w.store, key)
}
