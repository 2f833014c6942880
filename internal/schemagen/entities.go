// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import "github.com/robcelta/schemactl/internal/formdata"

// postalAddress collapses the flat address fields into a PostalAddress
// entity. All properties are emitted even when empty: the address block is a
// required part of the output shape for the types that use it.
func postalAddress(v formdata.Values) *Document {
	addr := NewEntity("PostalAddress")
	addr.Set("streetAddress", v.String("streetAddress"))
	addr.Set("addressLocality", v.String("addressLocality"))
	addr.Set("addressRegion", v.String("addressRegion"))
	addr.Set("postalCode", v.String("postalCode"))
	addr.Set("addressCountry", v.String("addressCountry"))
	return addr
}

func person(name string) *Document {
	p := NewEntity("Person")
	p.Set("name", name)
	return p
}

func organization(name string) *Document {
	o := NewEntity("Organization")
	o.Set("name", name)
	return o
}
