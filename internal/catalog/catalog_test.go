// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys_DeclarationOrder(t *testing.T) {
	assert.Equal(t, []string{
		"LocalBusiness",
		"Article",
		"Product",
		"Event",
		"Organization",
		"BreadcrumbList",
		"FAQPage",
		"Review",
		"HowTo",
		"Recipe",
		"VideoObject",
	}, Keys())
}

func TestGet(t *testing.T) {
	typ, ok := Get("LocalBusiness")
	require.True(t, ok)
	assert.Equal(t, "Local Business", typ.DisplayName)

	_, ok = Get("Bogus")
	assert.False(t, ok)
}

func TestType_Field(t *testing.T) {
	typ, _ := Get("Product")

	f, ok := typ.Field("availability")
	require.True(t, ok)
	assert.Equal(t, KindSelect, f.Kind)
	assert.Equal(t, []string{"InStock", "OutOfStock", "PreOrder"}, f.Options)

	_, ok = typ.Field("nope")
	assert.False(t, ok)
}

func TestType_RequiredFields(t *testing.T) {
	typ, _ := Get("Organization")
	var keys []string
	for _, f := range typ.RequiredFields() {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"name", "description", "url"}, keys)
}

func TestDefinitions_WellFormed(t *testing.T) {
	for _, typ := range All() {
		require.NotEmpty(t, typ.Fields, typ.Key)
		seen := make(map[string]bool)
		for _, f := range typ.Fields {
			assert.False(t, seen[f.Key], "%s: duplicate field %s", typ.Key, f.Key)
			seen[f.Key] = true
			assert.NotEmpty(t, f.Label, "%s.%s", typ.Key, f.Key)
			assert.NotEmpty(t, f.Kind, "%s.%s", typ.Key, f.Key)

			if f.Kind == KindArray {
				assert.NotEmpty(t, f.ItemFields, "%s.%s: array field needs item fields", typ.Key, f.Key)
			} else {
				assert.Empty(t, f.ItemFields, "%s.%s", typ.Key, f.Key)
			}
			if f.Kind == KindSelect {
				assert.NotEmpty(t, f.Options, "%s.%s: select field needs options", typ.Key, f.Key)
			} else {
				assert.Empty(t, f.Options, "%s.%s", typ.Key, f.Key)
			}
		}
	}
}

func TestJSONSchema(t *testing.T) {
	schema, err := JSONSchema("Article")
	require.NoError(t, err)

	assert.Equal(t, "object", schema.Type)
	assert.Contains(t, schema.Required, "headline")
	assert.NotContains(t, schema.Required, "image")

	headline := schema.Properties["headline"]
	require.NotNil(t, headline)
	assert.Equal(t, "string", headline.Type)

	published := schema.Properties["datePublished"]
	require.NotNil(t, published)
	assert.Equal(t, "date", published.Format)

	url := schema.Properties["url"]
	require.NotNil(t, url)
	assert.Equal(t, "uri", url.Format)
}

func TestJSONSchema_SelectAndArray(t *testing.T) {
	schema, err := JSONSchema("Product")
	require.NoError(t, err)
	availability := schema.Properties["availability"]
	require.NotNil(t, availability)
	assert.Len(t, availability.Enum, 3)

	schema, err = JSONSchema("BreadcrumbList")
	require.NoError(t, err)
	crumbs := schema.Properties["breadcrumbs"]
	require.NotNil(t, crumbs)
	assert.Equal(t, "array", crumbs.Type)
	require.NotNil(t, crumbs.Items)
	assert.Contains(t, crumbs.Items.Required, "name")
	assert.Contains(t, crumbs.Items.Required, "url")
}

func TestJSONSchema_UnknownType(t *testing.T) {
	_, err := JSONSchema("Bogus")
	assert.Error(t, err)
}
