package framework

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
run:
  - "^http"
skip:
  - "slow$"
debug: true
stackTraces: true
jsonOutput: results.json
`)

	c, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"^http"}, c.Run)
	assert.Equal(t, []string{"slow$"}, c.Skip)
	assert.True(t, c.Debug)
	assert.False(t, c.DebugAll)
	assert.True(t, c.StackTraces)
	assert.Equal(t, "results.json", c.JSONOutput)
}

func TestLoadConfigFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfigFile(t, "stackTrace: true\n")

	_, err := LoadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration file")
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigFilters(t *testing.T) {
	c := RunnerConfig{Run: []string{"^keep"}, Skip: []string{"drop$"}}

	filters, err := c.Filters()
	require.NoError(t, err)

	assert.True(t, filters.AsFilter(TestID{Path: []string{"keep this"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"other"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"keep drop"}}))
}

func TestConfigFiltersInvalidPattern(t *testing.T) {
	c := RunnerConfig{Run: []string{"("}}
	_, err := c.Filters()
	assert.Error(t, err)
}
