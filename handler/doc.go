/*
Package handler exposes the alias registry through JSON messages.

Commands are externally tagged objects with snake_case fields:

	{"create":{"alias":"bob","avatar_url":"ipfs://avatar"}}
	{"destroy":{"alias":"bob"}}
	{"search":{"search_type":"address","search_value":"wasm1bob"}}

Execute handles create and destroy for an authenticated caller; Query handles
search. Malformed or ambiguous messages fail with errors.ErrInvalidInput.
*/
package handler
