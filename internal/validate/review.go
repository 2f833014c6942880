// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import (
	"strconv"

	"github.com/robcelta/schemactl/internal/formdata"
)

func init() {
	Register(review{})
}

type review struct{}

func (review) Type() string { return "Review" }

func (review) Check(v formdata.Values) Result {
	var r report
	r.required(v, "reviewBody", "Review text is required")
	r.required(v, "reviewRating", "Rating is required")
	r.required(v, "author", "Reviewer name is required")
	r.required(v, "datePublished", "Review date is required")
	r.required(v, "itemReviewed", "Item being reviewed is required")

	if raw := v.String("reviewRating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 1 || rating > 5 {
			r.err("Rating must be a number between 1 and 5")
		}
	}
	if body := v.String("reviewBody"); body != "" && len(body) < 50 {
		r.warn("Detailed reviews (50+ characters) provide better SEO value")
	}
	return r.result()
}
