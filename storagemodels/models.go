/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Address is the canonical string form of an already-authenticated caller identity.
type Address string

// AliasRecord is the value stored in the alias index for a claimed alias.
// Field order and names are part of the persisted layout.
type AliasRecord struct {
	// Owner is the address that claimed the alias.
	Owner Address `cbor:"human_address" json:"address"`
	// AvatarURL is an optional, unconstrained avatar reference.
	AvatarURL *string `cbor:"avatar_url" json:"avatar_url"`
}

// Equal reports whether two records carry the same owner and avatar reference.
func (r AliasRecord) Equal(other AliasRecord) bool {
	if r.Owner != other.Owner {
		return false
	}
	if r.AvatarURL == nil || other.AvatarURL == nil {
		return r.AvatarURL == nil && other.AvatarURL == nil
	}
	return *r.AvatarURL == *other.AvatarURL
}

// AliasAttributes is the response view of a claimed alias.
type AliasAttributes struct {
	Alias     string  `json:"alias"`
	AvatarURL *string `json:"avatar_url"`
	Address   Address `json:"address"`
}

// Attributes builds the response view of record r claimed under alias.
func (r AliasRecord) Attributes(alias string) AliasAttributes {
	return AliasAttributes{
		Alias:     alias,
		AvatarURL: r.AvatarURL,
		Address:   r.Owner,
	}
}

// Search types accepted by the registry.
const (
	SearchTypeAlias   = "alias"
	SearchTypeAddress = "address"
)

// SearchResult is returned by a successful search. Type mirrors the search branch taken.
type SearchResult struct {
	Type       string          `json:"type"`
	Attributes AliasAttributes `json:"attributes"`
}

// ResponseStatus is the status carried by a destroy answer.
type ResponseStatus string

const (
	StatusSuccess ResponseStatus = "success"
	StatusFailure ResponseStatus = "failure"
)
