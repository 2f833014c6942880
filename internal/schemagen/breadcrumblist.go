// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(breadcrumbList{})
}

type breadcrumbList struct{}

func (breadcrumbList) Type() string { return "BreadcrumbList" }

func (breadcrumbList) Build(v formdata.Values) *Document {
	doc := NewJSONLD("BreadcrumbList")

	items := []any{}
	for _, crumb := range v.Records("breadcrumbs") {
		if crumb["name"] == "" || crumb["url"] == "" {
			continue
		}
		item := NewEntity("ListItem")
		// Positions are 1-indexed by output order, so skipped partial
		// records never leave gaps in the sequence.
		item.Set("position", len(items)+1)
		item.Set("name", crumb["name"])
		item.Set("item", crumb["url"])
		items = append(items, item)
	}
	doc.Set("itemListElement", items)
	return doc
}
