// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package schemagen

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(recipe{})
}

type recipe struct{}

func (recipe) Type() string { return "Recipe" }

func (recipe) Build(v formdata.Values) *Document {
	doc := NewJSONLD("Recipe")
	doc.Set("name", v.String("name"))
	doc.Set("description", v.String("description"))
	doc.Set("author", person(v.String("author")))
	doc.SetNonEmpty("prepTime", v.String("prepTime"))
	doc.SetNonEmpty("cookTime", v.String("cookTime"))
	doc.SetNonEmpty("totalTime", v.String("totalTime"))
	doc.SetNonEmpty("recipeYield", v.String("recipeYield"))
	doc.SetNonEmpty("recipeCategory", v.String("recipeCategory"))
	doc.SetNonEmpty("recipeCuisine", v.String("recipeCuisine"))
	doc.SetNonEmpty("image", v.String("image"))
	doc.SetNonEmpty("keywords", v.String("keywords"))

	// Ingredients are one per line; instructions additionally become
	// HowToStep records (text only, no per-step name).
	if ingredients := v.String("recipeIngredient"); ingredients != "" {
		doc.Set("recipeIngredient", splitList(ingredients, "\n"))
	}
	if instructions := v.String("recipeInstructions"); instructions != "" {
		steps := []any{}
		for _, line := range splitList(instructions, "\n") {
			step := NewEntity("HowToStep")
			step.Set("text", line)
			steps = append(steps, step)
		}
		doc.Set("recipeInstructions", steps)
	}
	return doc
}
