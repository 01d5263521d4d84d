package clicommand

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppLayout(t *testing.T) {
	app := App(nil)

	assert.Equal(t, "gadk", app.Name)
	require.Len(t, app.Commands, 2)
	assert.Equal(t, "sync", app.Commands[0].Name)
	assert.Equal(t, "check", app.Commands[1].Name)
}

func TestFlagDefaults(t *testing.T) {
	assert.Equal(t, ".github/workflows", OutputDirFlag.Value)
	assert.Equal(t, "GADK_OUTPUT_DIR", OutputDirFlag.EnvVar)
	assert.Equal(t, "GADK_FILTER", FilterFlag.EnvVar)
	assert.Equal(t, "GADK_NO_COLOR", NoColorFlag.EnvVar)
	assert.Equal(t, "GADK_DEBUG", DebugFlag.EnvVar)
}

func TestRunSync(t *testing.T) {
	dir := t.TempDir()

	code := Run(testRegistry(t), []string{"gadk", "sync", "--no-color", "--output-dir", dir})
	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(dir, "ci.yml"))
	assert.FileExists(t, filepath.Join(dir, "nightly.yml"))
}

func TestRunDefaultsToSync(t *testing.T) {
	dir := t.TempDir()

	code := Run(testRegistry(t), []string{"gadk", "--no-color", "--output-dir", dir})
	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(dir, "ci.yml"))
}

func TestRunCheckReportsDrift(t *testing.T) {
	dir := t.TempDir()
	reg := testRegistry(t)

	code := Run(reg, []string{"gadk", "check", "--no-color", "--output-dir", dir})
	assert.Equal(t, 1, code)

	code = Run(reg, []string{"gadk", "sync", "--no-color", "--output-dir", dir})
	require.Equal(t, 0, code)

	code = Run(reg, []string{"gadk", "check", "--no-color", "--output-dir", dir})
	assert.Equal(t, 0, code)
}

func TestRunRespectsOutputDirEnvVar(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GADK_OUTPUT_DIR", dir)

	code := Run(testRegistry(t), []string{"gadk", "sync", "--no-color"})
	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(dir, "ci.yml"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
