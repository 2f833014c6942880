// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(localBusiness{})
}

type localBusiness struct{}

func (localBusiness) Type() string { return "LocalBusiness" }

func (localBusiness) Check(v formdata.Values) Result {
	var r report
	r.required(v, "name", "Business name is required")
	r.required(v, "description", "Business description is required")
	r.required(v, "telephone", "Phone number is required")
	r.required(v, "url", "Website URL is required")
	r.required(v, "streetAddress", "Street address is required")
	r.required(v, "addressLocality", "City is required")
	r.required(v, "addressRegion", "State/Region is required")
	r.required(v, "postalCode", "Postal code is required")
	r.required(v, "addressCountry", "Country is required")

	if u := v.String("url"); u != "" && !IsURL(u) {
		r.err("Website URL must be a valid URL (include https://)")
	}
	if tel := v.String("telephone"); tel != "" && !IsPhone(tel) {
		r.warn("Phone number format could be improved (e.g., +1-555-123-4567)")
	}
	return r.result()
}
