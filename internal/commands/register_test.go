// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	rootCmd := NewRootCmd()
	require.NotNil(t, rootCmd)
	assert.Equal(t, "schemactl", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"init", "types", "generate", "validate", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestGenerateCmd_Flags(t *testing.T) {
	rootCmd := NewRootCmd()
	gen, _, err := rootCmd.Find([]string{"generate"})
	require.NoError(t, err)

	for _, flag := range []string{"type", "values", "output", "non-interactive"} {
		assert.NotNil(t, gen.Flags().Lookup(flag), flag)
	}
}
