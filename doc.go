/*
Package aliasstore is a registry of human-readable aliases bound to account
addresses.

Each address owns at most one alias and each alias has at most one owner. The
binding is kept in two indexes that are always updated together:

	aliases            alias   -> AliasRecord{Owner, AvatarURL}
	addresses_aliases  address -> alias

The plain functions Create, Destroy and Search operate on any datastore.KVStore
and must be called inside the caller's transaction boundary. Registry provides
that boundary on top of a datastore.Backend:

	backend, _ := aliasstore.DefaultBackends().Open(ctx, cfg)
	reg := aliasstore.New(backend)
	defer reg.Close()

	record, err := reg.Create(ctx, "wasm1owner", "bob", nil)
	result, err := reg.Search(ctx, storagemodels.SearchTypeAddress, "wasm1owner")
	err = reg.Destroy(ctx, "wasm1owner", "bob")

Failures are reported through the errors package: ErrAliasTaken,
ErrAddressAlreadyHasAlias, ErrAliasNotFound, ErrNotOwner,
ErrUnsupportedSearchType and ErrInternalInconsistency, plus any storage error
from the backend.
*/
package aliasstore
