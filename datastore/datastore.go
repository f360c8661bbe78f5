/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
	"io"
)

// ReadOnlyKVStore is a flat byte-keyed store that can only be read.
// Get reports found=false with a nil error when the key is absent.
type ReadOnlyKVStore interface {
	Get(ctx context.Context, key []byte) (value []byte, found bool, err error)
}

// KVStore is a flat byte-keyed store that can be read and mutated.
// Delete of an absent key is not an error.
type KVStore interface {
	ReadOnlyKVStore

	Set(ctx context.Context, key, value []byte) error

	Delete(ctx context.Context, key []byte) error
}

// Transactor runs fn as one all-or-nothing call. Writes fn makes through tx become
// visible only if fn returns nil; mutating calls never interleave.
type Transactor interface {
	Atomic(ctx context.Context, fn func(ctx context.Context, tx KVStore) error) error
}

// Viewer runs fn against a consistent read-only view. A view never observes part
// of a concurrent Atomic call's writes.
type Viewer interface {
	View(ctx context.Context, fn func(ctx context.Context, r ReadOnlyKVStore) error) error
}

// Backend is a persistent store. It is read directly or through View and written
// only through Atomic.
type Backend interface {
	ReadOnlyKVStore
	Transactor
	Viewer
	io.Closer
}
