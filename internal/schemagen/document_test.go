// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_KeyOrder(t *testing.T) {
	doc := NewJSONLD("Article")
	doc.Set("headline", "Hello")
	doc.Set("description", "World")

	assert.Equal(t, []string{"@context", "@type", "headline", "description"}, doc.Keys())
}

func TestDocument_SetNonEmpty(t *testing.T) {
	doc := NewDocument()
	doc.SetNonEmpty("present", "value")
	doc.SetNonEmpty("absent", "")

	_, ok := doc.Get("present")
	assert.True(t, ok)
	_, ok = doc.Get("absent")
	assert.False(t, ok)
}

func TestDocument_JSONContextFirst(t *testing.T) {
	doc := NewJSONLD("Event")
	doc.Set("name", "Conf")

	out, err := doc.JSON()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "{\n  \"@context\": \"https://schema.org\""),
		"output must open with @context: %s", out)
}

func TestDocument_JSONIsValidJSON(t *testing.T) {
	doc := NewJSONLD("Review")
	nested := NewEntity("Rating")
	nested.Set("ratingValue", "5")
	doc.Set("reviewRating", nested)

	out, err := doc.JSON()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "https://schema.org", parsed["@context"])

	rating, ok := parsed["reviewRating"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Rating", rating["@type"])
}

func TestDocument_NoLiteralClosingScriptSequence(t *testing.T) {
	doc := NewJSONLD("Article")
	doc.Set("headline", `breakout </script><script>alert(1)</script>`)

	out, err := doc.JSON()
	require.NoError(t, err)

	// The serialized body must never contain a literal "</" that could
	// terminate the surrounding script tag.
	assert.NotContains(t, out, "</")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Contains(t, parsed["headline"], "alert(1)")
}
