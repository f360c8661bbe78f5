/*
Package datastore defines the storage contracts of the alias registry and the
generic encoded storage adapter built on them.

The store itself is flat and byte-keyed:

	type KVStore interface {
	    Get(ctx context.Context, key []byte) ([]byte, bool, error)
	    Set(ctx context.Context, key, value []byte) error
	    Delete(ctx context.Context, key []byte) error
	}

ReadOnlyKVStore carries only Get, so read paths can be handed a store they cannot
mutate. A Backend is read directly and mutated only inside Atomic, which is the
transaction boundary of a registry call.

Namespaces partition one store into logical sub-stores:

	aliases := datastore.NewPrefixed(tx, "aliases")

Typed values are stored with a deterministic CBOR codec:

	err := datastore.Save(ctx, aliases, key, record)
	rec, err := datastore.MayLoad[storagemodels.AliasRecord](ctx, aliases, key)

Implementations:
  - mock: In-memory backend with error injection for testing
  - sqlite: SQLite backend (modernc.org/sqlite, no cgo)
  - ddb: DynamoDB backend committing each call with TransactWriteItems
*/
package datastore
