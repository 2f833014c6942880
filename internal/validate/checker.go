// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

// Package validate checks form values against per-type rule sets: required
// fields, format and cross-field errors, and SEO heuristics surfaced as
// warnings. One checker per schema type, selected through a registry.
package validate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/robcelta/schemactl/internal/formdata"
)

// ErrUnknownType reports a type key no checker is registered for. The
// accompanying Result is an empty pass so permissive callers keep the old
// nothing-to-validate behavior, but the condition is observable by name.
var ErrUnknownType = errors.New("unknown schema type")

// Checker validates form values for one schema type. Check never fails; all
// findings are collected into the Result.
type Checker interface {
	// Type returns the schema.org type key this checker handles.
	Type() string

	// Check runs the full rule set over the values.
	Check(values formdata.Values) Result
}

var checkers = make(map[string]Checker)

// Register adds a checker to the registry.
func Register(c Checker) {
	checkers[c.Type()] = c
}

// Get retrieves the checker for a type key.
func Get(typeKey string) (Checker, error) {
	c, ok := checkers[typeKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeKey)
	}
	return c, nil
}

// Available returns all registered type keys, sorted.
func Available() []string {
	keys := make([]string, 0, len(checkers))
	for key := range checkers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Validate runs the rule set for typeKey over the values. For an
// unrecognized key it returns an empty passing Result together with
// ErrUnknownType.
func Validate(typeKey string, values formdata.Values) (Result, error) {
	c, err := Get(typeKey)
	if err != nil {
		return Result{IsValid: true}, err
	}
	return c.Check(values), nil
}
