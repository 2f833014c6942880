// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(howTo{})
}

type howTo struct{}

func (howTo) Type() string { return "HowTo" }

func (howTo) Build(v formdata.Values) *Document {
	doc := NewJSONLD("HowTo")
	doc.Set("name", v.String("name"))
	doc.Set("description", v.String("description"))
	doc.SetNonEmpty("totalTime", v.String("totalTime"))

	// Supplies and tools are single-line comma lists.
	if supply := v.String("supply"); supply != "" {
		doc.Set("supply", splitList(supply, ","))
	}
	if tool := v.String("tool"); tool != "" {
		doc.Set("tool", splitList(tool, ","))
	}

	steps := []any{}
	for _, s := range v.Records("steps") {
		if s["name"] == "" || s["text"] == "" {
			continue
		}
		step := NewEntity("HowToStep")
		step.Set("name", s["name"])
		step.Set("text", s["text"])
		if s["image"] != "" {
			step.Set("image", s["image"])
		}
		steps = append(steps, step)
	}
	doc.Set("step", steps)
	return doc
}
