// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

// Package catalog holds the static definitions of the supported schema.org
// content types: field keys, labels, input kinds and required flags. It is
// pure data; the generator and validator drive their behavior from it.
package catalog

// Kind is the input kind of a form field.
type Kind string

// Field input kinds.
const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
	KindDate     Kind = "date"
	KindDateTime Kind = "datetime"
	KindNumber   Kind = "number"
	KindURL      Kind = "url"
	KindEmail    Kind = "email"
	KindTel      Kind = "tel"
	KindArray    Kind = "array"
)

// Field describes one form field of a schema type.
type Field struct {
	Key         string
	Label       string
	Kind        Kind
	Required    bool
	Placeholder string
	Options     []string // select fields only, in display order
	ItemFields  []Field  // array fields only, one level of nesting
}

// Type describes one supported schema.org content type.
type Type struct {
	Key         string
	DisplayName string
	Description string
	Fields      []Field // declaration order drives form and rule ordering
}

// Field returns the field definition for key.
func (t Type) Field(key string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredFields returns the required fields in declaration order.
func (t Type) RequiredFields() []Field {
	var out []Field
	for _, f := range t.Fields {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// Keys returns all supported type keys in declaration order.
func Keys() []string {
	keys := make([]string, len(types))
	for i, t := range types {
		keys[i] = t.Key
	}
	return keys
}

// All returns every type definition in declaration order.
func All() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// Get returns the type definition for key. The second return value is false
// for an unknown key; callers should treat that as a configuration error.
func Get(key string) (Type, bool) {
	for _, t := range types {
		if t.Key == key {
			return t, true
		}
	}
	return Type{}, false
}
