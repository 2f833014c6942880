// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

// Package schemagen turns form values into schema.org JSON-LD markup. One
// builder per supported content type, selected through a registry keyed by
// the schema type.
package schemagen

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/robcelta/schemactl/internal/formdata"
)

// ErrUnknownType reports a type key the registry does not recognize. The
// degenerate output is still produced so callers can stay permissive, but
// the condition is observable instead of a silent pass.
var ErrUnknownType = errors.New("unknown schema type")

// Builder converts form values into a JSON-LD document for one schema type.
// Build must never fail: missing required fields become empty strings and
// missing optional fields are omitted.
type Builder interface {
	// Type returns the schema.org type key this builder handles.
	Type() string

	// Build maps the raw form values into a JSON-LD document.
	Build(values formdata.Values) *Document
}

var builders = make(map[string]Builder)

// Register adds a builder to the registry.
func Register(b Builder) {
	builders[b.Type()] = b
}

// Get retrieves the builder for a type key.
func Get(typeKey string) (Builder, error) {
	b, ok := builders[typeKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeKey)
	}
	return b, nil
}

// Available returns all registered type keys, sorted.
func Available() []string {
	keys := make([]string, 0, len(builders))
	for key := range builders {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Generate builds the JSON-LD document for typeKey. For an unrecognized key
// it returns the context-only document together with ErrUnknownType.
func Generate(typeKey string, values formdata.Values) (*Document, error) {
	b, err := Get(typeKey)
	if err != nil {
		return NewJSONLD(""), err
	}
	return b.Build(values), nil
}

// Script renders the generated document wrapped in a script tag, ready to
// paste into a page head. The unknown-type error passes through alongside
// the degenerate output.
func Script(typeKey string, values formdata.Values) (string, error) {
	doc, genErr := Generate(typeKey, values)
	body, err := doc.JSON()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<script type=%q>\n%s\n</script>", "application/ld+json", body), genErr
}

// splitList splits a free-text multi-value field on sep, trimming each item
// and discarding empties.
func splitList(s, sep string) []string {
	var out []string
	for _, item := range strings.Split(s, sep) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
