// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import (
	"fmt"
	"strings"

	"github.com/robcelta/schemactl/internal/formdata"
)

func init() {
	Register(howTo{})
}

type howTo struct{}

func (howTo) Type() string { return "HowTo" }

func (howTo) Check(v formdata.Values) Result {
	var r report
	r.required(v, "name", "Guide title is required")
	r.required(v, "description", "Guide description is required")

	steps := v.Records("steps")
	if len(steps) == 0 {
		r.err("At least one instruction step is required")
	} else {
		for i, step := range steps {
			if strings.TrimSpace(step["name"]) == "" {
				r.err(fmt.Sprintf("Step %d: Step title is required", i+1))
			}
			if strings.TrimSpace(step["text"]) == "" {
				r.err(fmt.Sprintf("Step %d: Step instructions are required", i+1))
			}
			if step["image"] != "" && !IsURL(step["image"]) {
				r.warn(fmt.Sprintf("Step %d: Step image should be a valid URL", i+1))
			}
		}
		if len(steps) < 3 {
			r.warn("How-to guides work best with at least 3 steps for comprehensive instructions")
		}
	}

	if tt := v.String("totalTime"); tt != "" && !durationHM.MatchString(tt) {
		r.warn("Total time should use ISO 8601 format (e.g., PT30M for 30 minutes)")
	}
	return r.result()
}
