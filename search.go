/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package aliasstore

import (
	"context"
	"fmt"

	"github.com/suparena/aliasstore/datastore"
	"github.com/suparena/aliasstore/errors"
	"github.com/suparena/aliasstore/index"
	"github.com/suparena/aliasstore/storagemodels"
)

type searchFunc func(ctx context.Context, store datastore.ReadOnlyKVStore, value string) (storagemodels.AliasAttributes, error)

var searchers = map[string]searchFunc{
	storagemodels.SearchTypeAlias:   searchByAlias,
	storagemodels.SearchTypeAddress: searchByAddress,
}

// Search resolves value according to searchType, which must be "alias" or
// "address". The result's Type names the branch that matched.
//
// An address whose owner entry points at a missing alias record fails with
// ErrInternalInconsistency rather than ErrAliasNotFound.
func Search(ctx context.Context, store datastore.ReadOnlyKVStore, searchType, value string) (storagemodels.SearchResult, error) {
	search, ok := searchers[searchType]
	if !ok {
		return storagemodels.SearchResult{}, errors.NewSearchTypeError(searchType)
	}

	attrs, err := search(ctx, store, value)
	if err != nil {
		return storagemodels.SearchResult{}, err
	}
	return storagemodels.SearchResult{Type: searchType, Attributes: attrs}, nil
}

func searchByAlias(ctx context.Context, store datastore.ReadOnlyKVStore, alias string) (storagemodels.AliasAttributes, error) {
	record, err := index.NewAliasReader(store).Get(ctx, storagemodels.NewAliasKey(alias))
	if err != nil {
		return storagemodels.AliasAttributes{}, fmt.Errorf("search alias %q: %w", alias, err)
	}
	if record == nil {
		return storagemodels.AliasAttributes{}, errors.NewAliasNotFoundError(alias)
	}
	return record.Attributes(alias), nil
}

func searchByAddress(ctx context.Context, store datastore.ReadOnlyKVStore, address string) (storagemodels.AliasAttributes, error) {
	aliasKey, found, err := index.NewOwnerReader(store).Get(ctx, storagemodels.NewAddressKey(storagemodels.Address(address)))
	if err != nil {
		return storagemodels.AliasAttributes{}, fmt.Errorf("search address %q: %w", address, err)
	}
	if !found {
		return storagemodels.AliasAttributes{}, errors.NewAddressNotFoundError(address)
	}

	record, err := index.NewAliasReader(store).Get(ctx, aliasKey)
	if err != nil {
		return storagemodels.AliasAttributes{}, fmt.Errorf("search address %q: %w", address, err)
	}
	if record == nil || string(record.Owner) != address {
		return storagemodels.AliasAttributes{}, errors.NewInconsistencyError(address, aliasKey.String())
	}
	return record.Attributes(aliasKey.String()), nil
}
