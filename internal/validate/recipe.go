// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package validate

import "github.com/robcelta/schemactl/internal/formdata"

func init() {
	Register(recipe{})
}

type recipe struct{}

func (recipe) Type() string { return "Recipe" }

func (recipe) Check(v formdata.Values) Result {
	var r report
	r.required(v, "name", "Recipe name is required")
	r.required(v, "description", "Recipe description is required")
	r.required(v, "author", "Recipe author is required")
	r.required(v, "recipeIngredient", "Ingredients are required")
	r.required(v, "recipeInstructions", "Instructions are required")

	if img := v.String("image"); img != "" && !IsURL(img) {
		r.warn("Recipe image should be a valid URL")
	}
	if v.String("image") == "" {
		r.warn("Adding a recipe image greatly improves search visibility")
	}
	if pt := v.String("prepTime"); pt != "" && !durationHM.MatchString(pt) {
		r.warn("Prep time should use ISO 8601 format (e.g., PT15M for 15 minutes)")
	}
	if ct := v.String("cookTime"); ct != "" && !durationHM.MatchString(ct) {
		r.warn("Cook time should use ISO 8601 format (e.g., PT30M for 30 minutes)")
	}
	if v.String("recipeYield") == "" {
		r.warn("Adding yield/servings helps users plan portions")
	}
	return r.result()
}
