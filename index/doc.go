/*
Package index implements the two coupled indexes of the alias registry.

The alias index maps an alias key to its AliasRecord under the "aliases"
namespace. The owner index maps an address key to the alias key it owns under
the "addresses_aliases" namespace and exists to enforce one alias per address.

Each index has a reader, built from a datastore.ReadOnlyKVStore, and a writer
that adds Set and Remove:

	aliases := index.NewAliasReader(backend)    // search paths
	owners := index.NewOwnerWriter(tx)          // inside Atomic

Writers perform unconditional upserts and deletes. Keeping the two indexes
consistent is the job of the registry core.
*/
package index
