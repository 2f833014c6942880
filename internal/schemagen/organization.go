// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(organizationType{})
}

type organizationType struct{}

func (organizationType) Type() string { return "Organization" }

func (organizationType) Build(v formdata.Values) *Document {
	doc := NewJSONLD("Organization")
	doc.Set("name", v.String("name"))
	doc.Set("description", v.String("description"))
	doc.Set("url", v.String("url"))
	doc.SetNonEmpty("logo", v.String("logo"))
	doc.SetNonEmpty("telephone", v.String("telephone"))
	doc.SetNonEmpty("email", v.String("email"))
	// The address block is optional here; a street address is the signal
	// that the user filled the address section at all.
	if v.String("streetAddress") != "" {
		doc.Set("address", postalAddress(v))
	}
	doc.SetNonEmpty("foundingDate", v.String("foundingDate"))
	return doc
}
