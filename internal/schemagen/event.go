// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(event{})
}

type event struct{}

func (event) Type() string { return "Event" }

func (event) Build(v formdata.Values) *Document {
	doc := NewJSONLD("Event")
	doc.Set("name", v.String("name"))
	doc.Set("description", v.String("description"))
	doc.Set("startDate", v.String("startDate"))
	doc.SetNonEmpty("endDate", v.String("endDate"))

	location := NewEntity("Place")
	location.Set("name", v.String("locationName"))
	location.Set("address", postalAddress(v))
	doc.Set("location", location)

	doc.Set("organizer", organization(v.String("organizer")))
	doc.SetNonEmpty("url", v.String("url"))
	doc.SetNonEmpty("image", v.String("image"))
	return doc
}
