// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robcelta/schemactl/internal/catalog"
	"github.com/robcelta/schemactl/internal/formdata"
)

func TestRegistry_CoversCatalog(t *testing.T) {
	for _, key := range catalog.Keys() {
		_, err := Get(key)
		assert.NoError(t, err, "no builder registered for %s", key)
	}
	assert.Len(t, Available(), len(catalog.Keys()))
}

func TestGenerate_UnknownType(t *testing.T) {
	doc, err := Generate("Bogus", formdata.Values{})
	require.ErrorIs(t, err, ErrUnknownType)

	// Degenerate but stable: context only, no @type.
	assert.Equal(t, []string{"@context"}, doc.Keys())
}

func TestGenerate_Deterministic(t *testing.T) {
	values := formdata.Values{
		"name":        "Joe's Cafe",
		"description": "Coffee shop",
	}
	first, err := Script("LocalBusiness", values)
	require.NoError(t, err)
	second, err := Script("LocalBusiness", values)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_ContextFirstForAllTypes(t *testing.T) {
	for _, key := range catalog.Keys() {
		doc, err := Generate(key, formdata.Values{})
		require.NoError(t, err, key)

		keys := doc.Keys()
		require.NotEmpty(t, keys, key)
		assert.Equal(t, "@context", keys[0], key)
		assert.Equal(t, "@type", keys[1], key)
	}
}

// Every field the catalog declares must flow into the generated output.
// Marker values make the check exhaustive: a catalog field the builder does
// not consume fails this test, keeping catalog and generator in sync.
func TestGenerate_ConsumesEveryCatalogField(t *testing.T) {
	for _, typ := range catalog.All() {
		values := formdata.Values{}
		var markers []string

		for _, f := range typ.Fields {
			if f.Kind == catalog.KindArray {
				rec := formdata.Record{}
				for _, sub := range f.ItemFields {
					marker := "val-" + f.Key + "-" + sub.Key
					rec[sub.Key] = marker
					markers = append(markers, marker)
				}
				values[f.Key] = []formdata.Record{rec}
				continue
			}
			marker := "val-" + f.Key
			values[f.Key] = marker
			markers = append(markers, marker)
		}

		doc, err := Generate(typ.Key, values)
		require.NoError(t, err, typ.Key)
		out, err := doc.JSON()
		require.NoError(t, err, typ.Key)

		for _, marker := range markers {
			assert.Contains(t, out, marker, "%s: field value not emitted", typ.Key)
		}
	}
}

func TestLocalBusiness_Shape(t *testing.T) {
	values := formdata.Values{
		"name":            "Joe's Cafe",
		"description":     "Coffee shop",
		"telephone":       "+1-555-000-1111",
		"url":             "https://joescafe.com",
		"streetAddress":   "1 Main St",
		"addressLocality": "Springfield",
		"addressRegion":   "IL",
		"postalCode":      "62701",
		"addressCountry":  "US",
	}

	doc, err := Generate("LocalBusiness", values)
	require.NoError(t, err)

	typ, _ := doc.Get("@type")
	assert.Equal(t, "LocalBusiness", typ)

	addr, ok := doc.Get("address")
	require.True(t, ok)
	addrDoc, ok := addr.(*Document)
	require.True(t, ok)
	addrType, _ := addrDoc.Get("@type")
	assert.Equal(t, "PostalAddress", addrType)
	street, _ := addrDoc.Get("streetAddress")
	assert.Equal(t, "1 Main St", street)

	// Empty optionals never appear.
	_, ok = doc.Get("priceRange")
	assert.False(t, ok)
	_, ok = doc.Get("openingHours")
	assert.False(t, ok)
}

func TestLocalBusiness_RequiredFieldsEmittedWhenEmpty(t *testing.T) {
	doc, err := Generate("LocalBusiness", formdata.Values{})
	require.NoError(t, err)

	name, ok := doc.Get("name")
	require.True(t, ok)
	assert.Equal(t, "", name)

	email, ok := doc.Get("email")
	require.True(t, ok)
	assert.Equal(t, "", email)
}

func TestArticle_DateModifiedFallsBackToDatePublished(t *testing.T) {
	doc, err := Generate("Article", formdata.Values{
		"datePublished": "2025-03-01",
	})
	require.NoError(t, err)

	modified, _ := doc.Get("dateModified")
	assert.Equal(t, "2025-03-01", modified)

	doc, err = Generate("Article", formdata.Values{
		"datePublished": "2025-03-01",
		"dateModified":  "2025-04-01",
	})
	require.NoError(t, err)
	modified, _ = doc.Get("dateModified")
	assert.Equal(t, "2025-04-01", modified)
}

func TestArticle_AuthorAndPublisherEntities(t *testing.T) {
	doc, err := Generate("Article", formdata.Values{
		"author":    "Jane Roe",
		"publisher": "The Daily",
	})
	require.NoError(t, err)

	author, _ := doc.Get("author")
	authorDoc := author.(*Document)
	authorType, _ := authorDoc.Get("@type")
	assert.Equal(t, "Person", authorType)

	publisher, _ := doc.Get("publisher")
	publisherDoc := publisher.(*Document)
	publisherType, _ := publisherDoc.Get("@type")
	assert.Equal(t, "Organization", publisherType)
}

func TestProduct_AvailabilityDefaultsToInStock(t *testing.T) {
	doc, err := Generate("Product", formdata.Values{})
	require.NoError(t, err)

	offers, _ := doc.Get("offers")
	offerDoc := offers.(*Document)

	availability, _ := offerDoc.Get("availability")
	assert.Equal(t, "https://schema.org/InStock", availability)
	currency, _ := offerDoc.Get("priceCurrency")
	assert.Equal(t, "USD", currency)

	_, ok := offerDoc.Get("itemCondition")
	assert.False(t, ok)
}

func TestProduct_ConditionRewrittenToURI(t *testing.T) {
	doc, err := Generate("Product", formdata.Values{
		"availability": "OutOfStock",
		"condition":    "UsedCondition",
	})
	require.NoError(t, err)

	offers, _ := doc.Get("offers")
	offerDoc := offers.(*Document)

	availability, _ := offerDoc.Get("availability")
	assert.Equal(t, "https://schema.org/OutOfStock", availability)
	condition, _ := offerDoc.Get("itemCondition")
	assert.Equal(t, "https://schema.org/UsedCondition", condition)
}

func TestEvent_LocationNesting(t *testing.T) {
	doc, err := Generate("Event", formdata.Values{
		"locationName":  "Convention Center",
		"streetAddress": "123 Event St",
	})
	require.NoError(t, err)

	location, _ := doc.Get("location")
	locDoc := location.(*Document)
	locType, _ := locDoc.Get("@type")
	assert.Equal(t, "Place", locType)

	addr, _ := locDoc.Get("address")
	addrDoc := addr.(*Document)
	addrType, _ := addrDoc.Get("@type")
	assert.Equal(t, "PostalAddress", addrType)

	_, ok := doc.Get("endDate")
	assert.False(t, ok)
}

func TestOrganization_AddressOnlyWithStreetAddress(t *testing.T) {
	doc, err := Generate("Organization", formdata.Values{"name": "Acme"})
	require.NoError(t, err)
	_, ok := doc.Get("address")
	assert.False(t, ok)

	doc, err = Generate("Organization", formdata.Values{
		"name":          "Acme",
		"streetAddress": "1 Acme Way",
	})
	require.NoError(t, err)
	_, ok = doc.Get("address")
	assert.True(t, ok)
}

func TestBreadcrumbList_SkipsPartialAndRenumbers(t *testing.T) {
	doc, err := Generate("BreadcrumbList", formdata.Values{
		"breadcrumbs": []formdata.Record{
			{"name": "Home", "url": "https://x.com"},
			{"name": "", "url": "https://y.com"},
			{"name": "About", "url": "https://z.com"},
		},
	})
	require.NoError(t, err)

	elements, _ := doc.Get("itemListElement")
	items := elements.([]any)
	require.Len(t, items, 2)

	first := items[0].(*Document)
	pos, _ := first.Get("position")
	assert.Equal(t, 1, pos)
	name, _ := first.Get("name")
	assert.Equal(t, "Home", name)

	second := items[1].(*Document)
	pos, _ = second.Get("position")
	assert.Equal(t, 2, pos, "positions must not leave gaps for skipped items")
	item, _ := second.Get("item")
	assert.Equal(t, "https://z.com", item)
}

func TestBreadcrumbList_EmptyStillEmitsList(t *testing.T) {
	doc, err := Generate("BreadcrumbList", formdata.Values{})
	require.NoError(t, err)

	out, err := doc.JSON()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	elements, ok := parsed["itemListElement"].([]any)
	require.True(t, ok, "itemListElement must serialize as an array, not null")
	assert.Empty(t, elements)
}

func TestFAQPage_QuestionAnswerNesting(t *testing.T) {
	doc, err := Generate("FAQPage", formdata.Values{
		"questions": []formdata.Record{
			{"question": "Why?", "answer": "Because."},
			{"question": "Incomplete", "answer": ""},
		},
	})
	require.NoError(t, err)

	entities, _ := doc.Get("mainEntity")
	items := entities.([]any)
	require.Len(t, items, 1)

	question := items[0].(*Document)
	qType, _ := question.Get("@type")
	assert.Equal(t, "Question", qType)

	answer, _ := question.Get("acceptedAnswer")
	answerDoc := answer.(*Document)
	aType, _ := answerDoc.Get("@type")
	assert.Equal(t, "Answer", aType)
	text, _ := answerDoc.Get("text")
	assert.Equal(t, "Because.", text)
}

func TestReview_RatingEntity(t *testing.T) {
	doc, err := Generate("Review", formdata.Values{"reviewRating": "4"})
	require.NoError(t, err)

	rating, _ := doc.Get("reviewRating")
	ratingDoc := rating.(*Document)
	value, _ := ratingDoc.Get("ratingValue")
	assert.Equal(t, "4", value)
	best, _ := ratingDoc.Get("bestRating")
	assert.Equal(t, "5", best)

	_, ok := doc.Get("publisher")
	assert.False(t, ok, "empty publisher must be omitted")
}

func TestHowTo_SupplyToolSplitOnComma(t *testing.T) {
	doc, err := Generate("HowTo", formdata.Values{
		"supply": "screwdriver, ladder , , wire nuts",
		"tool":   "drill",
	})
	require.NoError(t, err)

	supply, _ := doc.Get("supply")
	assert.Equal(t, []string{"screwdriver", "ladder", "wire nuts"}, supply)
	tool, _ := doc.Get("tool")
	assert.Equal(t, []string{"drill"}, tool)
}

func TestHowTo_StepsSkipPartialRecords(t *testing.T) {
	doc, err := Generate("HowTo", formdata.Values{
		"steps": []formdata.Record{
			{"name": "Cut power", "text": "Flip the breaker", "image": "https://x.com/1.jpg"},
			{"name": "Missing text", "text": ""},
		},
	})
	require.NoError(t, err)

	steps, _ := doc.Get("step")
	items := steps.([]any)
	require.Len(t, items, 1)

	step := items[0].(*Document)
	sType, _ := step.Get("@type")
	assert.Equal(t, "HowToStep", sType)
	image, _ := step.Get("image")
	assert.Equal(t, "https://x.com/1.jpg", image)
}

func TestRecipe_IngredientAndInstructionSplitting(t *testing.T) {
	doc, err := Generate("Recipe", formdata.Values{
		"recipeIngredient":   "2 cups flour\n1 cup sugar\n\n3 eggs",
		"recipeInstructions": "Mix dry ingredients\n\nBake at 180C",
	})
	require.NoError(t, err)

	ingredients, _ := doc.Get("recipeIngredient")
	assert.Equal(t, []string{"2 cups flour", "1 cup sugar", "3 eggs"}, ingredients)

	instructions, _ := doc.Get("recipeInstructions")
	steps := instructions.([]any)
	require.Len(t, steps, 2)

	first := steps[0].(*Document)
	text, _ := first.Get("text")
	assert.Equal(t, "Mix dry ingredients", text)
	_, hasName := first.Get("name")
	assert.False(t, hasName, "recipe steps carry text only")
}

func TestVideoObject_OptionalEntities(t *testing.T) {
	doc, err := Generate("VideoObject", formdata.Values{})
	require.NoError(t, err)

	// Required core fields always present, even when empty.
	thumb, ok := doc.Get("thumbnailUrl")
	require.True(t, ok)
	assert.Equal(t, "", thumb)
	upload, ok := doc.Get("uploadDate")
	require.True(t, ok)
	assert.Equal(t, "", upload)

	_, ok = doc.Get("author")
	assert.False(t, ok)

	doc, err = Generate("VideoObject", formdata.Values{"author": "Chan"})
	require.NoError(t, err)
	author, _ := doc.Get("author")
	authorType, _ := author.(*Document).Get("@type")
	assert.Equal(t, "Person", authorType)
}

func TestScript_Wrapping(t *testing.T) {
	script, err := Script("Organization", formdata.Values{"name": "Acme"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(script, "<script type=\"application/ld+json\">\n{"))
	assert.True(t, strings.HasSuffix(script, "\n</script>"))
	assert.Contains(t, script, "  \"@context\": \"https://schema.org\"")
}

func TestScript_UnknownTypePassesErrorThrough(t *testing.T) {
	script, err := Script("Bogus", formdata.Values{})
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, script, "\"@context\": \"https://schema.org\"")
	assert.NotContains(t, script, "@type")
}
