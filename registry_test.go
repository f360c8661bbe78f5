/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package aliasstore

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/suparena/aliasstore/datastore/mock"
	"github.com/suparena/aliasstore/errors"
	"github.com/suparena/aliasstore/storagemodels"
)

func TestRegistryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := mock.New()
	reg := New(store)
	defer reg.Close()

	if _, err := reg.Create(ctx, "wasm1bob", "bob", strPtr("ipfs://avatar")); err != nil {
		t.Fatalf("create: %v", err)
	}

	result, err := reg.Search(ctx, storagemodels.SearchTypeAlias, "bob")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if result.Attributes.Address != "wasm1bob" {
		t.Fatalf("unexpected owner %q", result.Attributes.Address)
	}

	if err := reg.Destroy(ctx, "wasm1bob", "bob"); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if store.Count() != 0 {
		t.Fatalf("round trip left %d keys behind", store.Count())
	}
	if _, err := reg.Search(ctx, storagemodels.SearchTypeAlias, "bob"); !errors.IsAliasNotFound(err) {
		t.Fatalf("expected alias not found after destroy, got %v", err)
	}
}

func TestRegistryRollsBackPartialWrites(t *testing.T) {
	ctx := context.Background()
	failure := fmt.Errorf("disk failure")

	t.Run("create fails on owner write", func(t *testing.T) {
		writes := 0
		store := mock.New().WithSetFunc(func(key, value []byte) error {
			writes++
			if writes == 2 {
				return failure
			}
			return nil
		})
		reg := New(store)

		if _, err := reg.Create(ctx, "wasm1bob", "bob", nil); err == nil {
			t.Fatal("expected create to fail")
		}
		if store.Count() != 0 {
			t.Fatalf("alias entry survived a failed create: %d keys", store.Count())
		}
	})

	t.Run("destroy fails on owner delete", func(t *testing.T) {
		deletes := 0
		store := mock.New()
		reg := New(store)
		if _, err := reg.Create(ctx, "wasm1bob", "bob", nil); err != nil {
			t.Fatalf("seed: %v", err)
		}
		before := store.GetData()

		store.WithDeleteFunc(func(key []byte) error {
			deletes++
			if deletes == 2 {
				return failure
			}
			return nil
		})
		if err := reg.Destroy(ctx, "wasm1bob", "bob"); err == nil {
			t.Fatal("expected destroy to fail")
		}
		after := store.GetData()
		for k, v := range before {
			if !bytes.Equal(after[k], v) {
				t.Fatalf("key %x changed by a failed destroy", k)
			}
		}
		checkConsistent(t, store)
	})

	t.Run("commit fails", func(t *testing.T) {
		store := mock.New().WithCommitError(failure)
		reg := New(store)

		if _, err := reg.Create(ctx, "wasm1bob", "bob", nil); err == nil {
			t.Fatal("expected create to fail")
		}
		if store.Count() != 0 {
			t.Fatal("failed commit reached storage")
		}
	})
}

// TestRegistryRandomOperations drives random create/destroy sequences and checks
// the indexes against a reference model after every step.
func TestRegistryRandomOperations(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	aliases := []string{"alice", "bob", "carol", "dave", "eve", "bob2", ""}
	addrs := []storagemodels.Address{"wasm1a", "wasm1b", "wasm1c", "wasm1d", "wasm1e"}

	for round := 0; round < 20; round++ {
		store := mock.New()
		reg := New(store)
		// owner of each claimed alias
		model := make(map[string]storagemodels.Address)
		modelAlias := func(addr storagemodels.Address) (string, bool) {
			for alias, owner := range model {
				if owner == addr {
					return alias, true
				}
			}
			return "", false
		}

		for step := 0; step < 200; step++ {
			alias := aliases[rng.Intn(len(aliases))]
			caller := addrs[rng.Intn(len(addrs))]

			if rng.Intn(2) == 0 {
				_, err := reg.Create(ctx, caller, alias, nil)
				_, taken := model[alias]
				_, owns := modelAlias(caller)
				switch {
				case alias == "":
					if !errors.IsValidationError(err) {
						t.Fatalf("round %d step %d: expected validation error, got %v", round, step, err)
					}
				case taken:
					if !errors.IsAliasTaken(err) {
						t.Fatalf("round %d step %d: expected alias taken, got %v", round, step, err)
					}
				case owns:
					if !errors.IsAddressAlreadyHasAlias(err) {
						t.Fatalf("round %d step %d: expected address has alias, got %v", round, step, err)
					}
				default:
					if err != nil {
						t.Fatalf("round %d step %d: create %q for %q: %v", round, step, alias, caller, err)
					}
					model[alias] = caller
				}
			} else {
				err := reg.Destroy(ctx, caller, alias)
				owner, taken := model[alias]
				switch {
				case alias == "":
					if !errors.IsValidationError(err) {
						t.Fatalf("round %d step %d: expected validation error, got %v", round, step, err)
					}
				case !taken:
					if !errors.IsAliasNotFound(err) {
						t.Fatalf("round %d step %d: expected alias not found, got %v", round, step, err)
					}
				case owner != caller:
					if !errors.IsNotOwner(err) {
						t.Fatalf("round %d step %d: expected not owner, got %v", round, step, err)
					}
				default:
					if err != nil {
						t.Fatalf("round %d step %d: destroy %q: %v", round, step, alias, err)
					}
					delete(model, alias)
				}
			}

			checkConsistent(t, store)
			stored, _ := indexes(t, store)
			if len(stored) != len(model) {
				t.Fatalf("round %d step %d: stored %d aliases, model has %d", round, step, len(stored), len(model))
			}
			for alias, owner := range model {
				if stored[alias].Owner != owner {
					t.Fatalf("round %d step %d: alias %q owned by %q, want %q", round, step, alias, stored[alias].Owner, owner)
				}
			}
		}

		// Both search branches agree for every live binding
		for alias, owner := range model {
			byAlias, err := reg.Search(ctx, storagemodels.SearchTypeAlias, alias)
			if err != nil {
				t.Fatalf("search alias %q: %v", alias, err)
			}
			byAddress, err := reg.Search(ctx, storagemodels.SearchTypeAddress, string(owner))
			if err != nil {
				t.Fatalf("search address %q: %v", owner, err)
			}
			if byAlias.Attributes.Alias != byAddress.Attributes.Alias || byAlias.Attributes.Address != byAddress.Attributes.Address {
				t.Fatalf("search branches disagree: %+v vs %+v", byAlias.Attributes, byAddress.Attributes)
			}
		}
	}
}

func TestRegistryConcurrentClaims(t *testing.T) {
	ctx := context.Background()
	store := mock.New()
	reg := New(store)

	const callers = 16
	var wg sync.WaitGroup
	results := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = reg.Create(ctx, storagemodels.Address(fmt.Sprintf("wasm1caller%d", i)), "contested", nil)
		}(i)
	}

	var searchWG sync.WaitGroup
	for i := 0; i < 4; i++ {
		searchWG.Add(1)
		go func() {
			defer searchWG.Done()
			for j := 0; j < 50; j++ {
				_, err := reg.Search(ctx, storagemodels.SearchTypeAddress, "wasm1caller0")
				if err != nil && !errors.IsAliasNotFound(err) {
					t.Errorf("search observed a partial commit: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	searchWG.Wait()

	winners := 0
	for _, err := range results {
		switch {
		case err == nil:
			winners++
		case !errors.IsAliasTaken(err):
			t.Fatalf("unexpected error %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
	checkConsistent(t, store)
}
