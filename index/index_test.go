/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package index_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/suparena/aliasstore/datastore/mock"
	"github.com/suparena/aliasstore/index"
	"github.com/suparena/aliasstore/storagemodels"
)

func TestAliasIndex(t *testing.T) {
	ctx := context.Background()
	store := mock.New()
	writer := index.NewAliasWriter(store)
	reader := index.NewAliasReader(store)
	key := storagemodels.NewAliasKey("bob")

	got, err := reader.Get(ctx, key)
	if err != nil || got != nil {
		t.Fatalf("Expected absent alias, got %+v, %v", got, err)
	}

	avatar := "http://x"
	rec := storagemodels.AliasRecord{Owner: "secret1abc", AvatarURL: &avatar}
	if err := writer.Set(ctx, key, rec); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err = reader.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || !got.Equal(rec) {
		t.Fatalf("Record mismatch: %+v", got)
	}

	// Set is an unconditional upsert
	replaced := storagemodels.AliasRecord{Owner: "secret1def"}
	if err := writer.Set(ctx, key, replaced); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, _ := writer.Get(ctx, key); got == nil || !got.Equal(replaced) {
		t.Fatalf("Expected upserted record, got %+v", got)
	}

	if err := writer.Remove(ctx, key); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := writer.Remove(ctx, key); err != nil {
		t.Fatalf("Remove of absent alias failed: %v", err)
	}
	if got, _ := reader.Get(ctx, key); got != nil {
		t.Fatalf("Expected alias to be removed, got %+v", got)
	}
}

func TestOwnerIndex(t *testing.T) {
	ctx := context.Background()
	store := mock.New()
	writer := index.NewOwnerWriter(store)
	reader := index.NewOwnerReader(store)
	addr := storagemodels.NewAddressKey("secret1abc")

	if _, found, err := reader.Get(ctx, addr); err != nil || found {
		t.Fatalf("Expected no entry, got found=%v err=%v", found, err)
	}

	if err := writer.Set(ctx, addr, storagemodels.NewAliasKey("bob")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	aliasKey, found, err := reader.Get(ctx, addr)
	if err != nil || !found {
		t.Fatalf("Expected entry, got found=%v err=%v", found, err)
	}
	if !bytes.Equal(aliasKey, storagemodels.NewAliasKey("bob")) {
		t.Fatalf("Expected alias key bob, got %q", aliasKey)
	}

	if err := writer.Remove(ctx, addr); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, found, _ := reader.Get(ctx, addr); found {
		t.Fatal("Expected entry to be removed")
	}
}

func TestIndexesDoNotShareKeys(t *testing.T) {
	ctx := context.Background()
	store := mock.New()

	// An address that happens to equal an alias must not collide across indexes
	index.NewAliasWriter(store).Set(ctx, storagemodels.NewAliasKey("same"), storagemodels.AliasRecord{Owner: "x"})

	if _, found, _ := index.NewOwnerReader(store).Get(ctx, storagemodels.NewAddressKey("same")); found {
		t.Fatal("alias index entry visible through the owner index")
	}
	if store.Count() != 1 {
		t.Fatalf("Expected exactly one stored key, got %d", store.Count())
	}
}
