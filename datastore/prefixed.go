/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
)

// namespacePrefix encodes namespace as a 2-byte big-endian length followed by its
// bytes, so no namespace is a prefix of another namespace's keys.
func namespacePrefix(namespace string) []byte {
	if len(namespace) > math.MaxUint16 {
		panic(fmt.Sprintf("datastore: namespace too long (%d bytes)", len(namespace)))
	}
	prefix := make([]byte, 2+len(namespace))
	binary.BigEndian.PutUint16(prefix, uint16(len(namespace)))
	copy(prefix[2:], namespace)
	return prefix
}

// ReadOnlyPrefixed is a read-only view of one namespace of a store.
type ReadOnlyPrefixed struct {
	prefix []byte
	store  ReadOnlyKVStore
}

// NewReadOnlyPrefixed scopes store to namespace.
func NewReadOnlyPrefixed(store ReadOnlyKVStore, namespace string) *ReadOnlyPrefixed {
	return &ReadOnlyPrefixed{
		prefix: namespacePrefix(namespace),
		store:  store,
	}
}

func (p *ReadOnlyPrefixed) key(key []byte) []byte {
	full := make([]byte, 0, len(p.prefix)+len(key))
	full = append(full, p.prefix...)
	return append(full, key...)
}

// Get reads key within the namespace.
func (p *ReadOnlyPrefixed) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	return p.store.Get(ctx, p.key(key))
}

// Prefixed is a mutable view of one namespace of a store.
type Prefixed struct {
	ReadOnlyPrefixed
	rw KVStore
}

// NewPrefixed scopes store to namespace.
func NewPrefixed(store KVStore, namespace string) *Prefixed {
	return &Prefixed{
		ReadOnlyPrefixed: ReadOnlyPrefixed{
			prefix: namespacePrefix(namespace),
			store:  store,
		},
		rw: store,
	}
}

// Set writes key within the namespace.
func (p *Prefixed) Set(ctx context.Context, key, value []byte) error {
	return p.rw.Set(ctx, p.key(key), value)
}

// Delete removes key within the namespace.
func (p *Prefixed) Delete(ctx context.Context, key []byte) error {
	return p.rw.Delete(ctx, p.key(key))
}
