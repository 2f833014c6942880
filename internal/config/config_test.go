// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemactl Authors

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	in := &Config{
		Version: CurrentConfigVersion,
		Type:    "LocalBusiness",
		Output:  "schema.json",
	}
	require.NoError(t, in.Save(path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Version: CurrentConfigVersion}
	assert.NoError(t, cfg.Validate())

	cfg.Version = 99
	assert.Error(t, cfg.Validate())
}
