// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(review{})
}

type review struct{}

func (review) Type() string { return "Review" }

func (review) Build(v formdata.Values) *Document {
	doc := NewJSONLD("Review")
	doc.Set("reviewBody", v.String("reviewBody"))

	rating := NewEntity("Rating")
	rating.Set("ratingValue", v.String("reviewRating"))
	rating.Set("bestRating", "5")
	doc.Set("reviewRating", rating)

	doc.Set("author", person(v.String("author")))
	doc.Set("datePublished", v.String("datePublished"))

	reviewed := NewEntity("Thing")
	reviewed.Set("name", v.String("itemReviewed"))
	doc.Set("itemReviewed", reviewed)

	if publisher := v.String("publisher"); publisher != "" {
		doc.Set("publisher", organization(publisher))
	}
	return doc
}
