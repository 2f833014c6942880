// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import (
	"bytes"
	"encoding/json"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Context is the JSON-LD context emitted on every generated document.
const Context = "https://schema.org"

// Document is a JSON-LD object that serializes its keys in insertion order.
// encoding/json sorts map keys, which would put @context and @type wherever
// the alphabet says; search engines and snippet reviewers expect them first.
type Document struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{m: orderedmap.New[string, any]()}
}

// NewJSONLD returns a top-level document with @context set and, when typeKey
// is non-empty, @type. An empty typeKey yields the degenerate context-only
// document used for unrecognized types.
func NewJSONLD(typeKey string) *Document {
	d := NewDocument()
	d.Set("@context", Context)
	if typeKey != "" {
		d.Set("@type", typeKey)
	}
	return d
}

// NewEntity returns a nested schema.org entity carrying its own @type.
func NewEntity(typeName string) *Document {
	d := NewDocument()
	d.Set("@type", typeName)
	return d
}

// Set stores key with value, appending it to the key order on first write.
func (d *Document) Set(key string, value any) {
	d.m.Set(key, value)
}

// SetNonEmpty stores key only when value is a non-empty string. Optional
// properties must never leak empty strings into the output.
func (d *Document) SetNonEmpty(key, value string) {
	if value != "" {
		d.m.Set(key, value)
	}
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	return d.m.Get(key)
}

// Keys returns the document's keys in insertion order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.m.Len())
	for pair := d.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	return d.m.Len()
}

// MarshalJSON serializes the document preserving key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.m)
}

// JSON renders the document as pretty-printed JSON with two-space indent.
// Any literal "</" inside string values is escaped to "<\/" so the rendered
// block can never terminate the surrounding script tag early, regardless of
// what the upstream sanitizer let through.
func (d *Document) JSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return "", err
	}
	out := strings.TrimRight(buf.String(), "\n")
	return strings.ReplaceAll(out, "</", `<\/`), nil
}
