/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned by the raw storage load primitive when a key is missing
	ErrNotFound = errors.New("entity not found")

	// ErrAliasNotFound is returned when an alias (or an address's alias) is not claimed
	ErrAliasNotFound = errors.New("alias not found")

	// ErrAliasTaken is returned when claiming an alias that already has an owner
	ErrAliasTaken = errors.New("alias already taken")

	// ErrAddressAlreadyHasAlias is returned when an address that owns an alias claims another
	ErrAddressAlreadyHasAlias = errors.New("address already has an alias")

	// ErrNotOwner is returned when a caller tries to destroy an alias it does not own
	ErrNotOwner = errors.New("caller does not own alias")

	// ErrUnsupportedSearchType is returned for search types other than "alias" and "address"
	ErrUnsupportedSearchType = errors.New("unsupported search type")

	// ErrEncode is returned when a record cannot be encoded for storage
	ErrEncode = errors.New("encode failed")

	// ErrDecode is returned when stored bytes cannot be decoded into a record
	ErrDecode = errors.New("decode failed")

	// ErrInternalInconsistency is returned when the owner index references an alias
	// that is absent from the alias index
	ErrInternalInconsistency = errors.New("internal index inconsistency")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConditionFailed is returned when a conditional write loses against a concurrent writer
	ErrConditionFailed = errors.New("condition check failed")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AliasError carries the alias involved in a registry rule violation.
// Kind is one of the alias sentinels (ErrAliasNotFound, ErrAliasTaken, ErrNotOwner).
type AliasError struct {
	Kind  error
	Alias string
}

func (e *AliasError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, e.Alias)
}

func (e *AliasError) Is(target error) bool {
	return target == e.Kind
}

// AddressError carries the address involved in a registry rule violation.
type AddressError struct {
	Kind    error
	Address string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, e.Address)
}

func (e *AddressError) Is(target error) bool {
	return target == e.Kind
}

// SearchTypeError represents a search request with an unknown search type
type SearchTypeError struct {
	SearchType string
}

func (e *SearchTypeError) Error() string {
	return fmt.Sprintf("unsupported search type %q", e.SearchType)
}

func (e *SearchTypeError) Is(target error) bool {
	return target == ErrUnsupportedSearchType
}

// EncodeError wraps a codec failure while encoding a value of Type
type EncodeError struct {
	Type string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Type, e.Err)
}

func (e *EncodeError) Is(target error) bool {
	return target == ErrEncode
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeError wraps a codec failure while decoding a value of Type
type DecodeError struct {
	Type string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Type, e.Err)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// InconsistencyError reports an owner index entry whose alias has no record, or
// a record owned by a different address.
type InconsistencyError struct {
	Address string
	Alias   string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("owner index maps address %q to alias %q, but the alias index disagrees", e.Address, e.Alias)
}

func (e *InconsistencyError) Is(target error) bool {
	return target == ErrInternalInconsistency
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConditionFailedError represents a failed conditional operation
type ConditionFailedError struct {
	Operation string
	Condition string
}

func (e *ConditionFailedError) Error() string {
	return fmt.Sprintf("condition check failed for %s operation: %s", e.Operation, e.Condition)
}

func (e *ConditionFailedError) Is(target error) bool {
	return target == ErrConditionFailed
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAliasNotFoundError creates an AliasError of kind ErrAliasNotFound
func NewAliasNotFoundError(alias string) error {
	return &AliasError{Kind: ErrAliasNotFound, Alias: alias}
}

// NewAliasTakenError creates an AliasError of kind ErrAliasTaken
func NewAliasTakenError(alias string) error {
	return &AliasError{Kind: ErrAliasTaken, Alias: alias}
}

// NewNotOwnerError creates an AliasError of kind ErrNotOwner
func NewNotOwnerError(alias string) error {
	return &AliasError{Kind: ErrNotOwner, Alias: alias}
}

// NewAddressAlreadyHasAliasError creates an AddressError of kind ErrAddressAlreadyHasAlias
func NewAddressAlreadyHasAliasError(address string) error {
	return &AddressError{Kind: ErrAddressAlreadyHasAlias, Address: address}
}

// NewAddressNotFoundError creates an AddressError of kind ErrAliasNotFound,
// used when an address owns no alias
func NewAddressNotFoundError(address string) error {
	return &AddressError{Kind: ErrAliasNotFound, Address: address}
}

// NewSearchTypeError creates a new SearchTypeError
func NewSearchTypeError(searchType string) error {
	return &SearchTypeError{SearchType: searchType}
}

// NewEncodeError creates a new EncodeError
func NewEncodeError(entityType string, err error) error {
	return &EncodeError{Type: entityType, Err: err}
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(entityType string, err error) error {
	return &DecodeError{Type: entityType, Err: err}
}

// NewInconsistencyError creates a new InconsistencyError
func NewInconsistencyError(address, alias string) error {
	return &InconsistencyError{Address: address, Alias: alias}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConditionFailedError creates a new ConditionFailedError
func NewConditionFailedError(operation, condition string) error {
	return &ConditionFailedError{Operation: operation, Condition: condition}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAliasNotFound checks if an error reports an unclaimed alias
func IsAliasNotFound(err error) bool {
	return errors.Is(err, ErrAliasNotFound)
}

// IsAliasTaken checks if an error reports an alias that already has an owner
func IsAliasTaken(err error) bool {
	return errors.Is(err, ErrAliasTaken)
}

// IsAddressAlreadyHasAlias checks if an error reports an address that already owns an alias
func IsAddressAlreadyHasAlias(err error) bool {
	return errors.Is(err, ErrAddressAlreadyHasAlias)
}

// IsNotOwner checks if an error is an authorization failure on destroy
func IsNotOwner(err error) bool {
	return errors.Is(err, ErrNotOwner)
}

// IsUnsupportedSearchType checks if an error is an unknown search type error
func IsUnsupportedSearchType(err error) bool {
	return errors.Is(err, ErrUnsupportedSearchType)
}

// IsEncodeError checks if an error is a codec encode failure
func IsEncodeError(err error) bool {
	return errors.Is(err, ErrEncode)
}

// IsDecodeError checks if an error is a codec decode failure
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsInternalInconsistency checks if an error reports broken cross-index invariants
func IsInternalInconsistency(err error) bool {
	return errors.Is(err, ErrInternalInconsistency)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConditionFailed checks if an error is a condition failed error
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}
