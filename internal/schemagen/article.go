// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(article{})
}

type article struct{}

func (article) Type() string { return "Article" }

func (article) Build(v formdata.Values) *Document {
	doc := NewJSONLD("Article")
	doc.Set("headline", v.String("headline"))
	doc.Set("description", v.String("description"))
	doc.Set("author", person(v.String("author")))
	doc.Set("datePublished", v.String("datePublished"))
	// dateModified falls back to the publication date when not supplied.
	modified := v.String("dateModified")
	if modified == "" {
		modified = v.String("datePublished")
	}
	doc.Set("dateModified", modified)
	doc.Set("url", v.String("url"))
	doc.Set("publisher", organization(v.String("publisher")))
	doc.SetNonEmpty("image", v.String("image"))
	doc.SetNonEmpty("mainEntityOfPage", v.String("mainEntityOfPage"))
	return doc
}
