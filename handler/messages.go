/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handler

import "github.com/suparena/aliasstore/storagemodels"

// ExecuteMsg is a mutating command. Exactly one field must be set.
type ExecuteMsg struct {
	Create  *CreateMsg  `json:"create,omitempty"`
	Destroy *DestroyMsg `json:"destroy,omitempty"`
}

// CreateMsg claims Alias for the caller.
type CreateMsg struct {
	Alias     string  `json:"alias"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// DestroyMsg releases Alias.
type DestroyMsg struct {
	Alias string `json:"alias"`
}

// QueryMsg is a read-only command. Exactly one field must be set.
type QueryMsg struct {
	Search *SearchMsg `json:"search,omitempty"`
}

// SearchMsg looks up SearchValue by SearchType ("alias" or "address").
type SearchMsg struct {
	SearchType  string `json:"search_type"`
	SearchValue string `json:"search_value"`
}

// ExecuteAnswer carries the result of the command that ran.
type ExecuteAnswer struct {
	Create  *CreateAnswer  `json:"create,omitempty"`
	Destroy *DestroyAnswer `json:"destroy,omitempty"`
}

// CreateAnswer describes the alias a create claimed.
type CreateAnswer struct {
	Alias storagemodels.AliasAttributes `json:"alias"`
}

// DestroyAnswer reports that a destroy succeeded.
type DestroyAnswer struct {
	Status storagemodels.ResponseStatus `json:"status"`
}
