// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com"))
	assert.True(t, IsURL("http://example.com/path?q=1"))
	assert.False(t, IsURL("example.com"))
	assert.False(t, IsURL("ftp://example.com"))
	assert.False(t, IsURL("https://"))
	assert.False(t, IsURL("javascript:alert(1)"))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("+1-555-123-4567"))
	assert.True(t, IsPhone("(555) 123 4567"))
	assert.False(t, IsPhone("call me"))
	assert.False(t, IsPhone("0123456"), "leading zero is not dialable internationally")
}

func TestDurationPatterns(t *testing.T) {
	assert.True(t, durationHM.MatchString("PT30M"))
	assert.True(t, durationHM.MatchString("PT1H30M"))
	assert.False(t, durationHM.MatchString("30 minutes"))
	assert.False(t, durationHM.MatchString("P1D"))

	assert.True(t, durationHMS.MatchString("PT5M30S"))
	assert.False(t, durationHMS.MatchString("five minutes"))
}

func TestIsNumber(t *testing.T) {
	assert.True(t, isNumber("19.99"))
	assert.True(t, isNumber("-3"))
	assert.False(t, isNumber("abc"))
	assert.False(t, isNumber(""))
	assert.False(t, isNumber("Inf"))
	assert.False(t, isNumber("NaN"))
}

func TestParseWhen(t *testing.T) {
	for _, in := range []string{
		"2025-06-01T10:00:00",
		"2025-06-01T10:00",
		"2025-06-01",
	} {
		_, ok := parseWhen(in)
		assert.True(t, ok, in)
	}
	_, ok := parseWhen("June 1st")
	assert.False(t, ok)
}
