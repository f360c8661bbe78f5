/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package aliasstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/suparena/aliasstore/datastore"
	"github.com/suparena/aliasstore/errors"
	"github.com/suparena/aliasstore/index"
	"github.com/suparena/aliasstore/storagemodels"
)

func validateClaim(caller storagemodels.Address, alias string) error {
	if strings.TrimSpace(string(caller)) == "" {
		return errors.NewValidationError("caller", "must not be empty")
	}
	if alias == "" {
		return errors.NewValidationError("alias", "must not be empty")
	}
	return nil
}

// Create claims alias for caller with an optional avatar reference.
//
// It fails with ErrAliasTaken if the alias already has an owner and with
// ErrAddressAlreadyHasAlias if caller already owns an alias. The alias entry is
// written before the owner entry. Create performs no locking and does not undo
// a partial write on failure: it must run inside the store's transaction boundary.
func Create(ctx context.Context, store datastore.KVStore, caller storagemodels.Address, alias string, avatarURL *string) (storagemodels.AliasRecord, error) {
	if err := validateClaim(caller, alias); err != nil {
		return storagemodels.AliasRecord{}, err
	}

	aliasKey := storagemodels.NewAliasKey(alias)
	addrKey := storagemodels.NewAddressKey(caller)
	aliases := index.NewAliasWriter(store)
	owners := index.NewOwnerWriter(store)

	existing, err := aliases.Get(ctx, aliasKey)
	if err != nil {
		return storagemodels.AliasRecord{}, fmt.Errorf("create alias %q: %w", alias, err)
	}
	if existing != nil {
		return storagemodels.AliasRecord{}, errors.NewAliasTakenError(alias)
	}

	_, owned, err := owners.Get(ctx, addrKey)
	if err != nil {
		return storagemodels.AliasRecord{}, fmt.Errorf("create alias %q: %w", alias, err)
	}
	if owned {
		return storagemodels.AliasRecord{}, errors.NewAddressAlreadyHasAliasError(string(caller))
	}

	record := storagemodels.AliasRecord{Owner: caller}
	if avatarURL != nil {
		avatar := *avatarURL
		record.AvatarURL = &avatar
	}

	if err := aliases.Set(ctx, aliasKey, record); err != nil {
		return storagemodels.AliasRecord{}, fmt.Errorf("create alias %q: %w", alias, err)
	}
	if err := owners.Set(ctx, addrKey, aliasKey); err != nil {
		return storagemodels.AliasRecord{}, fmt.Errorf("create alias %q: %w", alias, err)
	}
	return record, nil
}

// Destroy releases alias. Only the owner may destroy it.
//
// An unclaimed alias fails with ErrAliasNotFound and a foreign one with
// ErrNotOwner; neither is ever a silent no-op. The owner entry removed is the
// one derived from caller, not re-read from storage.
func Destroy(ctx context.Context, store datastore.KVStore, caller storagemodels.Address, alias string) error {
	if err := validateClaim(caller, alias); err != nil {
		return err
	}

	aliasKey := storagemodels.NewAliasKey(alias)
	aliases := index.NewAliasWriter(store)
	owners := index.NewOwnerWriter(store)

	record, err := aliases.Get(ctx, aliasKey)
	if err != nil {
		return fmt.Errorf("destroy alias %q: %w", alias, err)
	}
	if record == nil {
		return errors.NewAliasNotFoundError(alias)
	}
	if record.Owner != caller {
		return errors.NewNotOwnerError(alias)
	}

	if err := aliases.Remove(ctx, aliasKey); err != nil {
		return fmt.Errorf("destroy alias %q: %w", alias, err)
	}
	if err := owners.Remove(ctx, storagemodels.NewAddressKey(caller)); err != nil {
		return fmt.Errorf("destroy alias %q: %w", alias, err)
	}
	return nil
}
