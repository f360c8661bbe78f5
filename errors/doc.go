/*
Package errors provides semantic error types for the alias registry.

Every failure the registry can report has a sentinel that can be checked with the
standard errors.Is() function or the provided helper functions. Typed errors carry
the alias, address or Go type involved and match their sentinel through Is.

Registry Errors:

	var (
	    ErrAliasNotFound          = errors.New("alias not found")
	    ErrAliasTaken             = errors.New("alias already taken")
	    ErrAddressAlreadyHasAlias = errors.New("address already has an alias")
	    ErrNotOwner               = errors.New("caller does not own alias")
	    ErrUnsupportedSearchType  = errors.New("unsupported search type")
	    ErrInternalInconsistency  = errors.New("internal index inconsistency")
	)

Storage Errors:

	var (
	    ErrNotFound        = errors.New("entity not found")
	    ErrEncode          = errors.New("encode failed")
	    ErrDecode          = errors.New("decode failed")
	    ErrConditionFailed = errors.New("condition check failed")
	)

Usage:

	res, err := reg.Search(ctx, "alias", "bob")
	if err != nil {
	    if errors.IsAliasNotFound(err) {
	        // Handle unclaimed alias
	    }
	    if errors.IsInternalInconsistency(err) {
	        // The indexes disagree; never treat this as a normal miss
	    }
	    return err
	}

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
