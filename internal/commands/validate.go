// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robcelta/schemactl/internal/prompts"
	"github.com/robcelta/schemactl/internal/sanitize"
	"github.com/robcelta/schemactl/internal/validate"
)

type validateOptions struct {
	typeKey        string
	valuesFile     string
	nonInteractive bool
}

func registerValidateCmd(parent *cobra.Command) {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate form values without generating output",
		Example: `  # Interactive mode
  schemactl validate

  # Check a values file
  schemactl validate --type Event --values event.yaml --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typeKey, "type", "t", "", "Schema type key (e.g. LocalBusiness)")
	cmd.Flags().StringVarP(&opts.valuesFile, "values", "f", "", "Path to YAML or JSON values file")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	parent.AddCommand(cmd)
}

func runValidate(opts *validateOptions) error {
	typeKey, values, err := collectInput(opts.typeKey, opts.valuesFile, opts.nonInteractive)
	if err != nil {
		return err
	}

	values = sanitize.Values(typeKey, values)

	result, err := validate.Validate(typeKey, values)
	if err != nil {
		return err
	}
	prompts.PrintReport(result.Errors, result.Warnings)
	if !result.IsValid {
		return fmt.Errorf("%s values have %d validation error(s)", typeKey, len(result.Errors))
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Type", Value: typeKey},
		{Label: "Warnings", Value: fmt.Sprintf("%d", len(result.Warnings))},
	}, "Values are valid.")
	return nil
}
