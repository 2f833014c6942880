// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(product{})
}

type product struct{}

func (product) Type() string { return "Product" }

func (product) Build(v formdata.Values) *Document {
	doc := NewJSONLD("Product")
	doc.Set("name", v.String("name"))
	doc.Set("description", v.String("description"))

	brand := NewEntity("Brand")
	brand.Set("name", v.String("brand"))
	doc.Set("brand", brand)

	doc.SetNonEmpty("sku", v.String("sku"))
	doc.SetNonEmpty("image", v.String("image"))

	availability := v.String("availability")
	if availability == "" {
		availability = "InStock"
	}
	currency := v.String("priceCurrency")
	if currency == "" {
		currency = "USD"
	}

	offer := NewEntity("Offer")
	offer.Set("price", v.String("price"))
	offer.Set("priceCurrency", currency)
	offer.Set("availability", schemaURI(availability))
	offer.Set("url", v.String("url"))
	if condition := v.String("condition"); condition != "" {
		offer.Set("itemCondition", schemaURI(condition))
	}
	doc.Set("offers", offer)
	return doc
}

// schemaURI rewrites a bare enumeration keyword into its fully qualified
// schema.org URI form, e.g. "InStock" -> "https://schema.org/InStock".
func schemaURI(keyword string) string {
	return Context + "/" + keyword
}
