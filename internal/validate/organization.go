// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(organization{})
}

type organization struct{}

func (organization) Type() string { return "Organization" }

func (organization) Check(v formdata.Values) Result {
	var r report
	r.required(v, "name", "Organization name is required")
	r.required(v, "description", "Description is required")
	r.required(v, "url", "Website URL is required")

	if u := v.String("url"); u != "" && !IsURL(u) {
		r.err("Website URL must be a valid URL")
	}
	if logo := v.String("logo"); logo != "" && !IsURL(logo) {
		r.warn("Logo should be a valid URL")
	}
	if v.String("logo") == "" {
		r.warn("Adding a logo URL helps with brand recognition in search results")
	}
	return r.result()
}
