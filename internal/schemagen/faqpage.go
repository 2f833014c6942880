// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(faqPage{})
}

type faqPage struct{}

func (faqPage) Type() string { return "FAQPage" }

func (faqPage) Build(v formdata.Values) *Document {
	doc := NewJSONLD("FAQPage")

	entities := []any{}
	for _, item := range v.Records("questions") {
		if item["question"] == "" || item["answer"] == "" {
			continue
		}
		answer := NewEntity("Answer")
		answer.Set("text", item["answer"])

		question := NewEntity("Question")
		question.Set("name", item["question"])
		question.Set("acceptedAnswer", answer)
		entities = append(entities, question)
	}
	doc.Set("mainEntity", entities)
	return doc
}
