// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import (
	"fmt"
	"strings"

	"github.com/robcelta/schemactl/internal/formdata"
)

func init() {
	Register(breadcrumbList{})
}

type breadcrumbList struct{}

func (breadcrumbList) Type() string { return "BreadcrumbList" }

func (breadcrumbList) Check(v formdata.Values) Result {
	var r report
	crumbs := v.Records("breadcrumbs")
	if len(crumbs) == 0 {
		r.err("At least one breadcrumb item is required")
		return r.result()
	}

	// Element errors are 1-indexed by input position, not output position.
	for i, crumb := range crumbs {
		if strings.TrimSpace(crumb["name"]) == "" {
			r.err(fmt.Sprintf("Breadcrumb item %d: Page name is required", i+1))
		}
		if strings.TrimSpace(crumb["url"]) == "" {
			r.err(fmt.Sprintf("Breadcrumb item %d: Page URL is required", i+1))
		} else if !IsURL(crumb["url"]) {
			r.err(fmt.Sprintf("Breadcrumb item %d: Page URL must be a valid URL", i+1))
		}
	}

	if len(crumbs) < 2 {
		r.warn("Breadcrumbs work best with at least 2 items to show navigation hierarchy")
	}
	return r.result()
}
