package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args from a clean temp working
// directory and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "libevents version")
}

func TestInitCommand(t *testing.T) {
	out, err := execute(t, "init")

	require.NoError(t, err)
	assert.Contains(t, out, "[watch]")
	assert.Contains(t, out, "[[rule]]")
}

func TestEventsCommand(t *testing.T) {
	out, err := execute(t, "events")

	require.NoError(t, err)
	// The embedded defaults subscribe to created and written.
	assert.Contains(t, out, "file.created")
	assert.Contains(t, out, "file.written")
}

func TestEventsCommandMissingExplicitConfig(t *testing.T) {
	_, err := execute(t, "events", "--config", "missing.toml")

	assert.Error(t, err)
}
