// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robcelta/schemactl/internal/catalog"
)

func registerTypesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Inspect the supported schema.org content types",
	}

	registerTypesListCmd(cmd)
	registerTypesDescribeCmd(cmd)

	parent.AddCommand(cmd)
}

func registerTypesListCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all supported content types",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range catalog.All() {
				fmt.Printf("%-16s %-20s %s\n", t.Key, t.DisplayName, t.Description)
			}
			return nil
		},
	}
	parent.AddCommand(cmd)
}

type typesDescribeOptions struct {
	jsonSchema bool
}

func registerTypesDescribeCmd(parent *cobra.Command) {
	opts := &typesDescribeOptions{}

	cmd := &cobra.Command{
		Use:   "describe <type>",
		Short: "Show the fields of a content type",
		Example: `  # Show the field list
  schemactl types describe Recipe

  # Export the form-value contract as JSON Schema
  schemactl types describe Recipe --json-schema`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypesDescribe(args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonSchema, "json-schema", false, "Print the type's form contract as JSON Schema")

	parent.AddCommand(cmd)
}

func runTypesDescribe(typeKey string, opts *typesDescribeOptions) error {
	if opts.jsonSchema {
		schema, err := catalog.JSONSchema(typeKey)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize schema: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	typ, ok := catalog.Get(typeKey)
	if !ok {
		return fmt.Errorf("unknown schema type: %s (see \"schemactl types list\")", typeKey)
	}

	fmt.Printf("%s - %s\n\n", typ.DisplayName, typ.Description)
	for _, f := range typ.Fields {
		printField(f, "")
		for _, sub := range f.ItemFields {
			printField(sub, "  ")
		}
	}
	return nil
}

func printField(f catalog.Field, indent string) {
	required := "optional"
	if f.Required {
		required = "required"
	}
	fmt.Printf("%s%-20s %-10s %-9s %s\n", indent, f.Key, f.Kind, required, f.Label)
}
