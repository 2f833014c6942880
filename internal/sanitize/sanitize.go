// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

// Package sanitize cleans raw form input before it reaches the generator
// and validator: HTML-encodes markup characters, rejects values carrying
// script or dangerous-URL payloads, clamps lengths and normalizes URL,
// email and phone fields.
package sanitize

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/robcelta/schemactl/internal/catalog"
	"github.com/robcelta/schemactl/internal/formdata"
)

// Length ceilings, in characters.
const (
	MaxGeneral     = 1000
	MaxDescription = 5000
	MaxCeiling     = 10000
)

var htmlEncoder = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// Patterns whose presence rejects the whole value. The value is replaced
// with an empty string rather than partially stripped, so a blocked payload
// never survives in mangled form.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script\b`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)data:\s*text/html`),
	regexp.MustCompile(`(?i)expression\s*\(`),
	regexp.MustCompile(`(?i)@import`),
	regexp.MustCompile(`(?i)behavior\s*:`),
	regexp.MustCompile(`(?i)vbscript:`),
	regexp.MustCompile(`(?i)<(object|embed|iframe|frame|frameset)\b`),
	regexp.MustCompile(`(?i)<meta[^>]*http-equiv[^>]*refresh`),
	regexp.MustCompile(`(?i)<link[^>]*href[^>]*javascript:`),
}

var dangerousSchemes = regexp.MustCompile(`(?i)^(javascript|data|vbscript|file|ftp):`)

var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

var phoneStrip = regexp.MustCompile(`[^+\d\s\-()]`)

// Options controls Input behavior.
type Options struct {
	MaxLength int  // 0 means MaxCeiling
	AllowHTML bool // skip the HTML entity encoding step
}

// HTML encodes the characters that carry markup meaning.
func HTML(s string) string {
	return htmlEncoder.Replace(s)
}

// Dangerous reports whether s matches any of the blocked payload patterns.
func Dangerous(s string) bool {
	for _, p := range dangerousPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// Input trims, clamps and cleans a general text value. Values matching a
// dangerous pattern come back empty.
func Input(s string, opts Options) string {
	max := opts.MaxLength
	if max <= 0 || max > MaxCeiling {
		max = MaxCeiling
	}

	clean := strings.TrimSpace(s)
	if len(clean) > max {
		clean = clean[:max]
	}
	if Dangerous(clean) {
		return ""
	}
	if !opts.AllowHTML {
		clean = HTML(clean)
	}
	return clean
}

// URL validates and normalizes a URL value. Dangerous schemes and anything
// that is not http(s) come back empty; bare hosts get an https:// prefix.
func URL(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || dangerousSchemes.MatchString(trimmed) {
		return ""
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}

// Email lowercases and validates an email value, returning "" when invalid.
func Email(s string) string {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if !emailPattern.MatchString(trimmed) {
		return ""
	}
	return trimmed
}

// Phone strips everything but digits, +, -, parentheses and spaces.
func Phone(s string) string {
	return strings.TrimSpace(phoneStrip.ReplaceAllString(s, ""))
}

// Values sanitizes a whole values map using the catalog's field kinds to
// pick the right cleaner per field. Fields not present in the catalog (or an
// unknown type key) fall back to general text handling.
func Values(typeKey string, values formdata.Values) formdata.Values {
	typ, known := catalog.Get(typeKey)
	out := make(formdata.Values, len(values))

	for _, key := range values.Keys() {
		var field catalog.Field
		if known {
			field, _ = typ.Field(key)
		}

		switch values[key].(type) {
		case string:
			out[key] = scalar(field, values.String(key))
		default:
			recs := values.Records(key)
			cleaned := make([]formdata.Record, len(recs))
			for i, rec := range recs {
				cleaned[i] = record(field, rec)
			}
			out[key] = cleaned
		}
	}
	return out
}

func scalar(field catalog.Field, value string) string {
	switch field.Kind {
	case catalog.KindURL:
		return URL(value)
	case catalog.KindEmail:
		return Email(value)
	case catalog.KindTel:
		return Phone(value)
	case catalog.KindTextarea:
		return Input(value, Options{MaxLength: MaxDescription})
	default:
		return Input(value, Options{MaxLength: MaxGeneral})
	}
}

func record(field catalog.Field, rec formdata.Record) formdata.Record {
	out := make(formdata.Record, len(rec))
	for key, value := range rec {
		var sub catalog.Field
		for _, f := range field.ItemFields {
			if f.Key == key {
				sub = f
				break
			}
		}
		out[key] = scalar(sub, value)
	}
	return out
}
