// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schemactl",
		Short: "Generate schema.org JSON-LD markup from guided forms",
		Long: `schemactl generates schema.org structured data for SEO. Pick a content
type, fill in a guided form (or supply a values file), and get a validated,
ready-to-paste JSON-LD script block.`,
		SilenceUsage: true,
	}

	registerInitCmd(rootCmd)
	registerTypesCmd(rootCmd)
	registerGenerateCmd(rootCmd)
	registerValidateCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
