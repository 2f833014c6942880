// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import (
	"strings"

	"github.com/robcelta/schemactl/internal/formdata"
)

// Result is the outcome of validating one set of form values. Errors block
// output, warnings are SEO advisories and never affect validity. Both lists
// keep rule evaluation order for stable display.
type Result struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// report accumulates messages during a check run.
type report struct {
	errors   []string
	warnings []string
}

func (r *report) err(msg string) {
	r.errors = append(r.errors, msg)
}

func (r *report) warn(msg string) {
	r.warnings = append(r.warnings, msg)
}

// required appends msg when the value under key is absent or blank.
func (r *report) required(v formdata.Values, key, msg string) {
	if strings.TrimSpace(v.String(key)) == "" {
		r.err(msg)
	}
}

func (r *report) result() Result {
	return Result{
		IsValid:  len(r.errors) == 0,
		Errors:   r.errors,
		Warnings: r.warnings,
	}
}
