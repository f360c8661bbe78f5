/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package index

import (
	"context"

	"github.com/suparena/aliasstore/datastore"
	"github.com/suparena/aliasstore/storagemodels"
)

// OwnerReader answers which alias, if any, an address owns.
type OwnerReader struct {
	store datastore.ReadOnlyKVStore
}

// NewOwnerReader scopes store to the owner namespace.
func NewOwnerReader(store datastore.ReadOnlyKVStore) *OwnerReader {
	return &OwnerReader{
		store: datastore.NewReadOnlyPrefixed(store, storagemodels.AddressesAliasesNamespace),
	}
}

// Get returns the alias key owned by the address behind key.
func (r *OwnerReader) Get(ctx context.Context, key storagemodels.AddressKey) (storagemodels.AliasKey, bool, error) {
	aliasKey, err := datastore.MayLoad[storagemodels.AliasKey](ctx, r.store, key)
	if err != nil || aliasKey == nil {
		return nil, false, err
	}
	return *aliasKey, true, nil
}

// OwnerWriter reads and mutates the owner index.
type OwnerWriter struct {
	OwnerReader
	store datastore.KVStore
}

// NewOwnerWriter scopes store to the owner namespace.
func NewOwnerWriter(store datastore.KVStore) *OwnerWriter {
	prefixed := datastore.NewPrefixed(store, storagemodels.AddressesAliasesNamespace)
	return &OwnerWriter{
		OwnerReader: OwnerReader{store: prefixed},
		store:       prefixed,
	}
}

// Set records that the address behind key owns aliasKey.
func (w *OwnerWriter) Set(ctx context.Context, key storagemodels.AddressKey, aliasKey storagemodels.AliasKey) error {
	return datastore.Save(ctx, w.store, key, aliasKey)
}

// Remove deletes the entry for key. It is a no-op if the address owns no alias.
func (w *OwnerWriter) Remove(ctx context.Context, key storagemodels.AddressKey) error {
	return datastore.Remove(ctx, w.store, key)
}
