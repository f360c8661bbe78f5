/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Namespaces partitioning the flat store into the two indexes.
const (
	AliasesNamespace          = "aliases"
	AddressesAliasesNamespace = "addresses_aliases"
)

// AliasKey is the alias index key derived from an alias string.
type AliasKey []byte

// NewAliasKey derives the key for alias. It is the alias's raw UTF-8 bytes, so
// distinct aliases never share a key.
func NewAliasKey(alias string) AliasKey {
	return AliasKey(alias)
}

// String returns the alias the key was derived from.
func (k AliasKey) String() string {
	return string(k)
}

// AddressKey is the owner index key derived from an address.
type AddressKey []byte

// NewAddressKey derives the key for addr from its canonical bytes.
func NewAddressKey(addr Address) AddressKey {
	return AddressKey(addr)
}

// String returns the address the key was derived from.
func (k AddressKey) String() string {
	return string(k)
}
