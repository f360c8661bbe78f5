/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/suparena/aliasstore/datastore"
	"github.com/suparena/aliasstore/datastore/mock"
	"github.com/suparena/aliasstore/errors"
	"github.com/suparena/aliasstore/storagemodels"
)

func strPtr(s string) *string { return &s }

func TestPrefixedNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := mock.New()

	aliases := datastore.NewPrefixed(store, "aliases")
	owners := datastore.NewPrefixed(store, "addresses_aliases")

	if err := aliases.Set(ctx, []byte("bob"), []byte("record")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found, _ := owners.Get(ctx, []byte("bob")); found {
		t.Fatal("key written in one namespace is visible in another")
	}

	// "aliases" + "_x" must not collide with namespace "aliases_x"
	other := datastore.NewPrefixed(store, "aliases_x")
	if _, found, _ := other.Get(ctx, []byte("bob")); found {
		t.Fatal("namespaces sharing a textual prefix collide")
	}
	aliases.Set(ctx, []byte("_xbob"), []byte("a"))
	if _, found, _ := other.Get(ctx, []byte("bob")); found {
		t.Fatal("namespaces sharing a textual prefix collide")
	}

	ro := datastore.NewReadOnlyPrefixed(store, "aliases")
	v, found, err := ro.Get(ctx, []byte("bob"))
	if err != nil || !found || string(v) != "record" {
		t.Fatalf("read-only view mismatch: %q %v %v", v, found, err)
	}

	if err := aliases.Delete(ctx, []byte("bob")); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found, _ := ro.Get(ctx, []byte("bob")); found {
		t.Fatal("expected key to be deleted")
	}
}

func TestEncodedAdapter(t *testing.T) {
	ctx := context.Background()
	store := datastore.NewPrefixed(mock.New(), "aliases")
	rec := storagemodels.AliasRecord{Owner: "secret1abc", AvatarURL: strPtr("http://x")}

	t.Run("SaveAndLoad", func(t *testing.T) {
		if err := datastore.Save(ctx, store, []byte("bob"), rec); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got, err := datastore.Load[storagemodels.AliasRecord](ctx, store, []byte("bob"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !got.Equal(rec) {
			t.Fatalf("Loaded record mismatch: %+v", got)
		}

		maybe, err := datastore.MayLoad[storagemodels.AliasRecord](ctx, store, []byte("bob"))
		if err != nil || maybe == nil || !maybe.Equal(rec) {
			t.Fatalf("MayLoad mismatch: %+v, %v", maybe, err)
		}
	})

	t.Run("MissingKey", func(t *testing.T) {
		_, err := datastore.Load[storagemodels.AliasRecord](ctx, store, []byte("nobody"))
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
		var nf *errors.NotFoundError
		if e, ok := err.(*errors.NotFoundError); ok {
			nf = e
		}
		if nf == nil || nf.Type != "storagemodels.AliasRecord" {
			t.Fatalf("Expected NotFoundError naming the record type, got %#v", err)
		}

		maybe, err := datastore.MayLoad[storagemodels.AliasRecord](ctx, store, []byte("nobody"))
		if err != nil || maybe != nil {
			t.Fatalf("MayLoad on missing key should return nil, nil; got %+v, %v", maybe, err)
		}
	})

	t.Run("NilAvatarRoundTrip", func(t *testing.T) {
		bare := storagemodels.AliasRecord{Owner: "secret1def"}
		datastore.Save(ctx, store, []byte("carol"), bare)

		got, err := datastore.Load[storagemodels.AliasRecord](ctx, store, []byte("carol"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got.AvatarURL != nil {
			t.Fatalf("Expected nil avatar, got %q", *got.AvatarURL)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		if err := datastore.Remove(ctx, store, []byte("bob")); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if err := datastore.Remove(ctx, store, []byte("bob")); err != nil {
			t.Fatalf("Remove of absent key failed: %v", err)
		}
	})

	t.Run("DecodeError", func(t *testing.T) {
		store.Set(ctx, []byte("garbage"), []byte{0xff, 0x00, 0x13})

		_, err := datastore.MayLoad[storagemodels.AliasRecord](ctx, store, []byte("garbage"))
		if !errors.IsDecodeError(err) {
			t.Fatalf("Expected decode error, got: %v", err)
		}
	})
}

func TestCodecIsDeterministic(t *testing.T) {
	rec := storagemodels.AliasRecord{Owner: "secret1abc", AvatarURL: strPtr("http://x")}

	first, err := datastore.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _ := datastore.Marshal(rec)
		if !bytes.Equal(first, again) {
			t.Fatalf("encoding is not deterministic: %x vs %x", first, again)
		}
	}

	var decoded storagemodels.AliasRecord
	if err := datastore.Unmarshal(first, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !decoded.Equal(rec) {
		t.Fatalf("decoded mismatch: %+v", decoded)
	}

	if err := datastore.Unmarshal(append(first, 0x00), &decoded); err == nil {
		t.Fatal("expected trailing bytes to be rejected")
	}
}

func TestOverlay(t *testing.T) {
	ctx := context.Background()
	base := mock.New()
	base.Set(ctx, []byte("a"), []byte("1"))

	ov := datastore.NewOverlay(base)

	v, found, err := ov.Get(ctx, []byte("a"))
	if err != nil || !found || string(v) != "1" {
		t.Fatalf("overlay should read through to base: %q %v %v", v, found, err)
	}
	if _, found, _ := ov.Get(ctx, []byte("b")); found {
		t.Fatal("unexpected key b")
	}

	ov.Set(ctx, []byte("b"), []byte("2"))
	ov.Delete(ctx, []byte("a"))
	ov.Set(ctx, []byte("b"), []byte("3"))

	if _, found, _ := ov.Get(ctx, []byte("a")); found {
		t.Fatal("overlay should hide a buffered delete")
	}
	if v, _, _ := ov.Get(ctx, []byte("b")); string(v) != "3" {
		t.Fatalf("overlay should return the last buffered write, got %q", v)
	}
	if base.Count() != 1 {
		t.Fatal("overlay must not touch the base store")
	}

	writes := ov.Writes()
	if len(writes) != 2 {
		t.Fatalf("Expected 2 collapsed writes, got %d", len(writes))
	}
	if string(writes[0].Key) != "b" || string(writes[0].Value) != "3" || writes[0].Delete {
		t.Fatalf("unexpected first write: %+v", writes[0])
	}
	if string(writes[1].Key) != "a" || !writes[1].Delete {
		t.Fatalf("unexpected second write: %+v", writes[1])
	}

	obs, ok := ov.Observed([]byte("a"))
	if !ok || !obs.Found || string(obs.Value) != "1" {
		t.Fatalf("unexpected observation for a: %+v %v", obs, ok)
	}
	obs, ok = ov.Observed([]byte("b"))
	if !ok || obs.Found {
		t.Fatalf("b should be observed as absent: %+v %v", obs, ok)
	}
	if _, ok := ov.Observed([]byte("c")); ok {
		t.Fatal("c was never read")
	}
}
