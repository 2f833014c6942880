// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import (
	"fmt"
	"strings"

	"github.com/robcelta/schemactl/internal/formdata"
)

func init() {
	Register(faqPage{})
}

type faqPage struct{}

func (faqPage) Type() string { return "FAQPage" }

func (faqPage) Check(v formdata.Values) Result {
	var r report
	questions := v.Records("questions")
	if len(questions) == 0 {
		r.err("At least one FAQ item is required")
		return r.result()
	}

	for i, item := range questions {
		if strings.TrimSpace(item["question"]) == "" {
			r.err(fmt.Sprintf("FAQ item %d: Question is required", i+1))
		}
		if strings.TrimSpace(item["answer"]) == "" {
			r.err(fmt.Sprintf("FAQ item %d: Answer is required", i+1))
		}
		if len(item["question"]) > 200 {
			r.warn(fmt.Sprintf("FAQ item %d: Questions over 200 characters may be truncated in search results", i+1))
		}
		if item["answer"] != "" && len(item["answer"]) < 50 {
			r.warn(fmt.Sprintf("FAQ item %d: Detailed answers (50+ characters) provide better SEO value", i+1))
		}
	}

	if len(questions) < 3 {
		r.warn("FAQ pages work best with at least 3-5 questions for optimal SEO impact")
	}
	return r.result()
}
