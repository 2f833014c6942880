// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/robcelta/schemactl/internal/catalog"
	"github.com/robcelta/schemactl/internal/formdata"
	"github.com/robcelta/schemactl/internal/prompts"
	"github.com/robcelta/schemactl/internal/sanitize"
	"github.com/robcelta/schemactl/internal/schemagen"
	"github.com/robcelta/schemactl/internal/validate"
)

// submissions bounds how often generate/validate can run, mirroring the
// limit a hosted form front-end would enforce.
var submissions = sanitize.NewLimiter(20, time.Minute)

type generateOptions struct {
	typeKey        string // schema type key
	valuesFile     string // path to YAML/JSON values file
	output         string // output file; empty prints to stdout
	nonInteractive bool
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a JSON-LD script block for a content type",
		Long: `Generate schema.org JSON-LD markup. Interactive mode walks through the
fields of the selected type; non-interactive mode reads a values file.
Output is withheld when validation reports errors.`,
		Example: `  # Interactive mode
  schemactl generate

  # Non-interactive from a values file
  schemactl generate --type LocalBusiness --values business.yaml --non-interactive

  # Write the script block to a file
  schemactl generate --type Recipe --values recipe.yaml --output recipe.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typeKey, "type", "t", "", "Schema type key (e.g. LocalBusiness)")
	cmd.Flags().StringVarP(&opts.valuesFile, "values", "f", "", "Path to YAML or JSON values file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	parent.AddCommand(cmd)
}

func runGenerate(opts *generateOptions) error {
	typeKey, values, err := collectInput(opts.typeKey, opts.valuesFile, opts.nonInteractive)
	if err != nil {
		return err
	}

	if !submissions.Allow("global") {
		return errors.New("too many submissions; wait a minute and try again")
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

	script, err := schemagen.Script(typeKey, values)
	if err != nil {
		return err
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	output := opts.output
	if output == "" && cfg != nil {
		output = cfg.Output
	}

	if output == "" {
		fmt.Println(script)
		return nil
	}
	if err := os.WriteFile(output, []byte(script+"\n"), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write output: %w", err)
	}
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Type", Value: typeKey},
		{Label: "Output", Value: output},
	}, "Markup generated. Paste the script block into your page <head>.")
	return nil
}

// collectInput resolves the type key and form values from flags, the project
// config, a values file, or interactive prompts, in that order of authority.
func collectInput(typeKey, valuesFile string, nonInteractive bool) (string, formdata.Values, error) {
	cfg, err := loadProjectConfig()
	if err != nil {
		return "", nil, err
	}
	if typeKey == "" && cfg != nil {
		typeKey = cfg.Type
	}

	if nonInteractive {
		if typeKey == "" {
			return "", nil, errors.New("--type is required in non-interactive mode")
		}
		if valuesFile == "" {
			return "", nil, errors.New("--values is required in non-interactive mode")
		}
	}

	if typeKey == "" {
		if err := prompts.RunTypeSelect(&typeKey); err != nil {
			return "", nil, err
		}
	}
	typ, ok := catalog.Get(typeKey)
	if !ok {
		return "", nil, fmt.Errorf("unknown schema type: %s (see \"schemactl types list\")", typeKey)
	}

	values := formdata.Values{}
	if valuesFile != "" {
		if values, err = loadValues(valuesFile); err != nil {
			return "", nil, err
		}
	} else if !nonInteractive {
		if err := prompts.RunSchemaForm(typ, values); err != nil {
			return "", nil, err
		}
	}
	return typeKey, values, nil
}
