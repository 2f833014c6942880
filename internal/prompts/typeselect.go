// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/robcelta/schemactl/internal/catalog"
)

// RunTypeSelect prompts the user to pick a schema content type and writes the
// chosen type key into typeKey.
func RunTypeSelect(typeKey *string) error {
	options := make([]huh.Option[string], 0, len(catalog.All()))
	for _, t := range catalog.All() {
		label := fmt.Sprintf("%s - %s", t.DisplayName, t.Description)
		options = append(options, huh.NewOption(label, t.Key))
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Content type").
			Description("What kind of page is this markup for?").
			Options(options...).
			Value(typeKey),
	)).WithTheme(Theme()).Run()
}
