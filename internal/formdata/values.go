// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

// Package formdata models the raw field values produced by a form front-end.
package formdata

import (
	"fmt"
	"sort"
)

// Record is a single entry of an array-valued field, for example one
// breadcrumb or one FAQ item. Sub-field keys map to raw string input.
type Record map[string]string

// Values maps field keys to raw form input: a string for scalar fields, a
// []Record for array fields. A missing key is equivalent to an empty value.
type Values map[string]any

// String returns the scalar value for key, or "" when the key is absent or
// holds a non-string value.
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Records returns the array value for key. It tolerates the looser shapes a
// YAML or JSON decoder produces ([]any of map[string]any) so values files can
// be passed to the core without a manual conversion step.
func (v Values) Records(key string) []Record {
	switch rs := v[key].(type) {
	case []Record:
		return rs
	case []map[string]string:
		out := make([]Record, len(rs))
		for i, r := range rs {
			out[i] = Record(r)
		}
		return out
	case []any:
		out := make([]Record, 0, len(rs))
		for _, e := range rs {
			out = append(out, toRecord(e))
		}
		return out
	}
	return nil
}

// Normalize rebuilds a freshly decoded mapping into Values: scalars are
// stringified and array elements become Records.
func Normalize(raw map[string]any) Values {
	v := make(Values, len(raw))
	for key, val := range raw {
		switch t := val.(type) {
		case string:
			v[key] = t
		case []any:
			recs := make([]Record, 0, len(t))
			for _, e := range t {
				recs = append(recs, toRecord(e))
			}
			v[key] = recs
		case nil:
			v[key] = ""
		default:
			v[key] = fmt.Sprint(t)
		}
	}
	return v
}

// Keys returns the value keys in sorted order, for deterministic iteration.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toRecord(e any) Record {
	switch m := e.(type) {
	case Record:
		return m
	case map[string]string:
		return Record(m)
	case map[string]any:
		rec := make(Record, len(m))
		for k, val := range m {
			if s, ok := val.(string); ok {
				rec[k] = s
			} else if val != nil {
				rec[k] = fmt.Sprint(val)
			}
		}
		return rec
	}
	return Record{}
}
