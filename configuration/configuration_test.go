// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
)

type testLogging struct {
	File   string            `gluamapper:"file"`
	Count  int               `gluamapper:"count"`
	Levels map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	DataDirectory string      `gluamapper:"data_directory"`
	Datasets      []string    `gluamapper:"datasets"`
	Logging       testLogging `gluamapper:"logging"`
}

const luaConfiguration = `
local M = {}

M.data_directory = data_directory .. "/sets"
M.datasets = { "first.txt", "second.txt" }

M.logging = {
    file = "avlsets.log",
    count = 7,
    levels = {
        DEFAULT = "error",
        dataset = "debug",
    },
}

return M
`

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o600))
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeFile(t, "test.conf", luaConfiguration)

	config := &testConfiguration{
		DataDirectory: "unchanged",
	}
	variables := map[string]string{
		"data_directory": "/var/lib/avlsets",
	}
	err := configuration.ParseConfigurationFile(fileName, config, variables)
	require.NoError(t, err, "parse error")

	assert.Equal(t, "/var/lib/avlsets/sets", config.DataDirectory, "wrong data directory")
	assert.Equal(t, []string{"first.txt", "second.txt"}, config.Datasets, "wrong datasets")
	assert.Equal(t, "avlsets.log", config.Logging.File, "wrong log file")
	assert.Equal(t, 7, config.Logging.Count, "wrong log count")
	assert.Equal(t, "debug", config.Logging.Levels["dataset"], "wrong level")
}

func TestParseConfigurationKeepsDefaults(t *testing.T) {
	fileName := writeFile(t, "partial.conf", `return { datasets = { "only.txt" } }`)

	config := &testConfiguration{
		DataDirectory: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, config, nil)
	require.NoError(t, err, "parse error")
	assert.Equal(t, "default", config.DataDirectory, "default overwritten")
	assert.Equal(t, []string{"only.txt"}, config.Datasets, "wrong datasets")
}

func TestParseConfigurationNotTable(t *testing.T) {
	fileName := writeFile(t, "bad.conf", `return 42`)

	err := configuration.ParseConfigurationFile(fileName, &testConfiguration{}, nil)
	assert.True(t, fault.IsErrInvalid(err), "wrong error: %v", err)
}

func TestParseConfigurationSyntaxError(t *testing.T) {
	fileName := writeFile(t, "broken.conf", `return {`)

	err := configuration.ParseConfigurationFile(fileName, &testConfiguration{}, nil)
	assert.Error(t, err, "syntax error was accepted")
}

func TestDataDirectory(t *testing.T) {
	base := t.TempDir()

	directory, err := configuration.DataDirectory(base, ".")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(base), directory, "dot is the configuration directory")

	directory, err = configuration.DataDirectory(base, "data/sets")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "data", "sets"), directory, "relative directory")
	assert.DirExists(t, directory, "directory was not created")

	for _, bad := range []string{"", "~"} {
		_, err = configuration.DataDirectory(base, bad)
		assert.True(t, fault.IsErrInvalid(err), "accepted: %q", bad)
	}

	file := writeFile(t, "plain", "x")
	_, err = configuration.DataDirectory(base, file)
	assert.Error(t, err, "file accepted as directory")
}

func TestPlainName(t *testing.T) {
	assert.NoError(t, configuration.PlainName("sets.txt"))
	for _, bad := range []string{"", ".", "..", "a/b", "/abs"} {
		assert.True(t, fault.IsErrInvalid(configuration.PlainName(bad)), "accepted: %q", bad)
	}
	assert.Equal(t, "/base/x", configuration.EnsureAbsolute("/base", "x"))
	assert.Equal(t, "/y", configuration.EnsureAbsolute("/base", "/y"))
}
