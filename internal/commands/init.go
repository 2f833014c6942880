// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robcelta/schemactl/internal/catalog"
	"github.com/robcelta/schemactl/internal/config"
	"github.com/robcelta/schemactl/internal/prompts"
)

type initOptions struct {
	typeKey        string
	output         string
	nonInteractive bool
}

func registerInitCmd(parent *cobra.Command) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a schemactl project",
		Long: `Initialize a schemactl project with a schemactl.yaml configuration file
holding the default content type and output path for generate.`,
		Example: `  # Interactive mode
  schemactl init

  # Non-interactive
  schemactl init --type LocalBusiness --output schema.html --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typeKey, "type", "t", "", "Default schema type key")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Default output file for generate")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	parent.AddCommand(cmd)
}

func runInit(opts *initOptions) error {
	if _, err := os.Stat(config.DefaultFileName); err == nil {
		return errors.New("schemactl.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive && opts.typeKey == "" {
		if err := prompts.RunTypeSelect(&opts.typeKey); err != nil {
			return err
		}
	}
	if opts.typeKey != "" {
		if _, ok := catalog.Get(opts.typeKey); !ok {
			return fmt.Errorf("unknown schema type: %s (see \"schemactl types list\")", opts.typeKey)
		}
	}

	cfg := &config.Config{
		Version: config.CurrentConfigVersion,
		Type:    opts.typeKey,
		Output:  opts.output,
	}
	if err := cfg.Save(config.DefaultFileName); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.DefaultFileName, err)
	}

	fields := []prompts.ResultField{
		{Label: "Config", Value: config.DefaultFileName},
	}
	if cfg.Type != "" {
		fields = append(fields, prompts.ResultField{Label: "Default type", Value: cfg.Type})
	}
	if cfg.Output != "" {
		fields = append(fields, prompts.ResultField{Label: "Default output", Value: cfg.Output})
	}
	prompts.PrintResult(fields, "Project initialized.")
	return nil
}
