/*
Package storagemodels defines the data structures shared by the alias registry.

Key Types:

AliasRecord:
The value persisted under an alias key:

	rec := storagemodels.AliasRecord{
	    Owner:     "secret1qy...",
	    AvatarURL: &avatar,
	}

AliasKey / AddressKey:
Deterministic keys derived from an alias string and an address:

	storagemodels.NewAliasKey("bob")          // []byte("bob")
	storagemodels.NewAddressKey("secret1qy")  // []byte("secret1qy")

The alias index lives under the "aliases" namespace and the owner index under
"addresses_aliases"; see AliasesNamespace and AddressesAliasesNamespace.

AliasAttributes / SearchResult:
Response views returned by create and search.
*/
package storagemodels
