// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// IsURL reports whether s parses as an absolute http or https URL.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

// IsPhone reports whether s looks like a dialable phone number once
// separators (spaces, dashes, parentheses) are stripped.
func IsPhone(s string) bool {
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
	return phonePattern.MatchString(clean)
}

// Loose ISO 8601 duration checks: a prefix shape, not the full grammar.
// Deliberately kept permissive; these feed warnings only.
var (
	durationHM  = regexp.MustCompile(`^PT\d+[HM]?`)
	durationHMS = regexp.MustCompile(`^PT\d+[HMS]?`)
)

// isNumber reports whether s parses as a finite number.
func isNumber(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// parseWhen parses the datetime-local style values the date and datetime
// field kinds produce. The bool is false for anything unparseable.
func parseWhen(s string) (time.Time, bool) {
	for _, layout := range []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
