// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(article{})
}

type article struct{}

func (article) Type() string { return "Article" }

func (article) Check(v formdata.Values) Result {
	var r report
	r.required(v, "headline", "Article title is required")
	r.required(v, "description", "Article description is required")
	r.required(v, "author", "Author name is required")
	r.required(v, "datePublished", "Publication date is required")
	r.required(v, "url", "Article URL is required")
	r.required(v, "publisher", "Publisher name is required")

	if u := v.String("url"); u != "" && !IsURL(u) {
		r.err("Article URL must be a valid URL")
	}
	if img := v.String("image"); img != "" && !IsURL(img) {
		r.warn("Featured image should be a valid URL")
	}
	if len(v.String("headline")) > 110 {
		r.warn("Headlines over 110 characters may be truncated in search results")
	}
	return r.result()
}
