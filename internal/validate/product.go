// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(product{})
}

type product struct{}

func (product) Type() string { return "Product" }

func (product) Check(v formdata.Values) Result {
	var r report
	r.required(v, "name", "Product name is required")
	r.required(v, "description", "Product description is required")
	r.required(v, "brand", "Brand name is required")
	r.required(v, "price", "Price is required")
	r.required(v, "priceCurrency", "Currency is required")
	r.required(v, "availability", "Availability is required")
	r.required(v, "url", "Product URL is required")

	if price := v.String("price"); price != "" && !isNumber(price) {
		r.err("Price must be a valid number")
	}
	if u := v.String("url"); u != "" && !IsURL(u) {
		r.err("Product URL must be a valid URL")
	}
	if v.String("image") == "" {
		r.warn("Adding a product image URL improves SEO performance")
	}
	return r.result()
}
