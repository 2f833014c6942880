// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(localBusiness{})
}

type localBusiness struct{}

func (localBusiness) Type() string { return "LocalBusiness" }

func (localBusiness) Build(v formdata.Values) *Document {
	doc := NewJSONLD("LocalBusiness")
	doc.Set("name", v.String("name"))
	doc.Set("description", v.String("description"))
	doc.Set("telephone", v.String("telephone"))
	doc.Set("email", v.String("email"))
	doc.Set("url", v.String("url"))
	doc.Set("address", postalAddress(v))
	doc.SetNonEmpty("priceRange", v.String("priceRange"))
	doc.SetNonEmpty("openingHours", v.String("openingHours"))
	return doc
}
