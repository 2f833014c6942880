// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(event{})
}

type event struct{}

func (event) Type() string { return "Event" }

func (event) Check(v formdata.Values) Result {
	var r report
	r.required(v, "name", "Event name is required")
	r.required(v, "description", "Event description is required")
	r.required(v, "startDate", "Start date is required")
	r.required(v, "locationName", "Venue name is required")
	r.required(v, "streetAddress", "Street address is required")
	r.required(v, "addressLocality", "City is required")
	r.required(v, "addressRegion", "State/Region is required")
	r.required(v, "postalCode", "Postal code is required")
	r.required(v, "addressCountry", "Country is required")
	r.required(v, "organizer", "Organizer name is required")

	// End must be strictly after start. Unparseable dates skip the check;
	// the presence errors above already cover the empty case.
	start, startOK := parseWhen(v.String("startDate"))
	end, endOK := parseWhen(v.String("endDate"))
	if startOK && endOK && !end.After(start) {
		r.err("End date must be after start date")
	}
	if u := v.String("url"); u != "" && !IsURL(u) {
		r.warn("Event URL should be a valid URL")
	}
	return r.result()
}
