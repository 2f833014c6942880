// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robcelta/schemactl/internal/config"
	"github.com/robcelta/schemactl/internal/formdata"
)

// loadValues reads a YAML or JSON values file into form values. YAML is a
// superset of JSON, so one decoder covers both.
func loadValues(path string) (formdata.Values, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, fmt.Errorf("failed to read values file: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse values file: %w", err)
	}
	return formdata.Normalize(raw), nil
}

// loadProjectConfig returns the project config from the working directory,
// or nil when no schemactl.yaml exists. A malformed file is an error; a
// missing one is not.
func loadProjectConfig() (*config.Config, error) {
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.DefaultFileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.DefaultFileName, err)
	}
	return cfg, nil
}
