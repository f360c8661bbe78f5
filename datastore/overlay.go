/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"bytes"
	"context"
)

// Write is one buffered mutation. Delete is true for removals, in which case Value is nil.
type Write struct {
	Key    []byte
	Value  []byte
	Delete bool
}

// Observation is the state of a key in the base store when a call first read it.
type Observation struct {
	Value []byte
	Found bool
}

// Overlay buffers writes on top of a read-only base so a backend can apply a
// call's effects as a unit or drop them. Reads see the call's own writes.
// An Overlay is used by a single call and is not safe for concurrent use.
type Overlay struct {
	base     ReadOnlyKVStore
	writes   map[string]Write
	order    []string
	observed map[string]Observation
	reads    []string
}

// NewOverlay starts an empty overlay over base.
func NewOverlay(base ReadOnlyKVStore) *Overlay {
	return &Overlay{
		base:     base,
		writes:   make(map[string]Write),
		observed: make(map[string]Observation),
	}
}

// Get returns the buffered value for key, falling back to the base store.
func (o *Overlay) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	if w, ok := o.writes[string(key)]; ok {
		if w.Delete {
			return nil, false, nil
		}
		return bytes.Clone(w.Value), true, nil
	}

	value, found, err := o.base.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if _, seen := o.observed[string(key)]; !seen {
		o.observed[string(key)] = Observation{Value: bytes.Clone(value), Found: found}
		o.reads = append(o.reads, string(key))
	}
	return value, found, nil
}

// Set buffers a write of value under key.
func (o *Overlay) Set(ctx context.Context, key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.record(Write{Key: bytes.Clone(key), Value: bytes.Clone(value)})
	return nil
}

// Delete buffers a removal of key.
func (o *Overlay) Delete(ctx context.Context, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.record(Write{Key: bytes.Clone(key), Delete: true})
	return nil
}

func (o *Overlay) record(w Write) {
	k := string(w.Key)
	if _, exists := o.writes[k]; !exists {
		o.order = append(o.order, k)
	}
	o.writes[k] = w
}

// Writes returns the buffered mutations, one per key (the last write wins),
// in the order each key was first written.
func (o *Overlay) Writes() []Write {
	result := make([]Write, 0, len(o.order))
	for _, k := range o.order {
		result = append(result, o.writes[k])
	}
	return result
}

// Observed returns what the base store held for key when the call first read it.
// ok is false if the call never read key from the base store.
func (o *Overlay) Observed(key []byte) (obs Observation, ok bool) {
	obs, ok = o.observed[string(key)]
	return obs, ok
}

// ObservedKeys returns every key read from the base store, in first-read order.
func (o *Overlay) ObservedKeys() [][]byte {
	keys := make([][]byte, 0, len(o.reads))
	for _, k := range o.reads {
		keys = append(keys, []byte(k))
	}
	return keys
}
