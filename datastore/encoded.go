/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
	"fmt"

	"github.com/suparena/aliasstore/errors"
)

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// Load reads and decodes the value stored under key.
// A missing key fails with a NotFoundError naming T.
func Load[T any](ctx context.Context, store ReadOnlyKVStore, key []byte) (T, error) {
	var result T
	v, err := MayLoad[T](ctx, store, key)
	if err != nil {
		return result, err
	}
	if v == nil {
		return result, errors.NewNotFoundError(typeName[T](), string(key))
	}
	return *v, nil
}

// MayLoad reads and decodes the value stored under key.
// It returns nil, nil if the key is absent.
func MayLoad[T any](ctx context.Context, store ReadOnlyKVStore, key []byte) (*T, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", typeName[T](), err)
	}
	if !found {
		return nil, nil
	}

	result := new(T)
	if err := Unmarshal(raw, result); err != nil {
		return nil, errors.NewDecodeError(typeName[T](), err)
	}
	return result, nil
}

// Save encodes value and stores it under key.
func Save[T any](ctx context.Context, store KVStore, key []byte, value T) error {
	raw, err := Marshal(value)
	if err != nil {
		return errors.NewEncodeError(typeName[T](), err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", typeName[T](), err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is a no-op.
func Remove(ctx context.Context, store KVStore, key []byte) error {
	if err := store.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}
