// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package catalog

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// JSONSchema exports the form-value contract of a type as a JSON Schema, so
// external form renderers can validate their payloads before handing them to
// the generator. Scalar fields are strings (with format annotations), select
// fields are enum-constrained, array fields are arrays of flat objects.
func JSONSchema(typeKey string) (*jsonschema.Schema, error) {
	t, ok := Get(typeKey)
	if !ok {
		return nil, fmt.Errorf("unknown schema type: %s", typeKey)
	}

	schema := &jsonschema.Schema{
		Type:        "object",
		Description: t.Description,
		Properties:  make(map[string]*jsonschema.Schema, len(t.Fields)),
	}
	for _, f := range t.Fields {
		schema.Properties[f.Key] = fieldSchema(f)
		if f.Required {
			schema.Required = append(schema.Required, f.Key)
		}
	}
	return schema, nil
}

func fieldSchema(f Field) *jsonschema.Schema {
	if f.Kind == KindArray {
		item := &jsonschema.Schema{
			Type:       "object",
			Properties: make(map[string]*jsonschema.Schema, len(f.ItemFields)),
		}
		for _, sub := range f.ItemFields {
			item.Properties[sub.Key] = fieldSchema(sub)
			if sub.Required {
				item.Required = append(item.Required, sub.Key)
			}
		}
		return &jsonschema.Schema{
			Type:        "array",
			Description: f.Label,
			Items:       item,
		}
	}

	s := &jsonschema.Schema{Type: "string", Description: f.Label}
	switch f.Kind {
	case KindDate:
		s.Format = "date"
	case KindDateTime:
		s.Format = "date-time"
	case KindURL:
		s.Format = "uri"
	case KindEmail:
		s.Format = "email"
	case KindSelect:
		for _, opt := range f.Options {
			s.Enum = append(s.Enum, opt)
		}
	}
	// Numeric fields stay strings: the form layer hands everything over as
	// text and the validator owns the numeric parse.
	return s
}
