/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/suparena/aliasstore/errors"
	"github.com/suparena/aliasstore/storagemodels"
)

// Registry is the set of registry operations the handler dispatches to.
type Registry interface {
	Create(ctx context.Context, caller storagemodels.Address, alias string, avatarURL *string) (storagemodels.AliasRecord, error)
	Destroy(ctx context.Context, caller storagemodels.Address, alias string) error
	Search(ctx context.Context, searchType, value string) (storagemodels.SearchResult, error)
}

// Handler decodes JSON commands, runs them against a Registry and encodes the
// answers. Failures are returned as errors, never as a failure status.
type Handler struct {
	registry Registry
}

// New returns a Handler dispatching to registry.
func New(registry Registry) *Handler {
	return &Handler{registry: registry}
}

// Execute runs a create or destroy message on behalf of caller.
func (h *Handler) Execute(ctx context.Context, caller storagemodels.Address, msg []byte) ([]byte, error) {
	var m ExecuteMsg
	if err := decode(msg, &m); err != nil {
		return nil, err
	}

	var answer ExecuteAnswer
	switch {
	case m.Create != nil && m.Destroy == nil:
		record, err := h.registry.Create(ctx, caller, m.Create.Alias, m.Create.AvatarURL)
		if err != nil {
			return nil, err
		}
		answer.Create = &CreateAnswer{Alias: record.Attributes(m.Create.Alias)}
	case m.Destroy != nil && m.Create == nil:
		if err := h.registry.Destroy(ctx, caller, m.Destroy.Alias); err != nil {
			return nil, err
		}
		answer.Destroy = &DestroyAnswer{Status: storagemodels.StatusSuccess}
	default:
		return nil, errors.NewValidationError("msg", "exactly one of create or destroy must be set")
	}
	return encode(answer)
}

// Query runs a search message.
func (h *Handler) Query(ctx context.Context, msg []byte) ([]byte, error) {
	var m QueryMsg
	if err := decode(msg, &m); err != nil {
		return nil, err
	}
	if m.Search == nil {
		return nil, errors.NewValidationError("msg", "search must be set")
	}

	result, err := h.registry.Search(ctx, m.Search.SearchType, m.Search.SearchValue)
	if err != nil {
		return nil, err
	}
	return encode(result)
}

func decode(msg []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.NewValidationError("msg", fmt.Sprintf("malformed message: %v", err))
	}
	if dec.More() {
		return errors.NewValidationError("msg", "trailing data after message")
	}
	return nil
}

func encode(v any) ([]byte, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode answer: %w", err)
	}
	return out, nil
}
