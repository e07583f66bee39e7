package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGetFollowsAliases(t *testing.T) {
	path := writeConfig(t, "greeting: hi\naliases:\n  hello: greeting\n")

	out, err := run(t, "get", "hello", "--config", path, "--env-file", "")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
}

func TestHas(t *testing.T) {
	path := writeConfig(t, "greeting: hi\n")

	out, err := run(t, "has", "greeting", "--config", path, "--env-file", "")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "has", "missing", "--config", path, "--env-file", "")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestIDs(t *testing.T) {
	path := writeConfig(t, "b: 2\na: 1\naliases:\n  c: a\n")

	out, err := run(t, "ids", "--config", path, "--env-file", "")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc -> a\n", out)
}

func TestAliasCycle(t *testing.T) {
	path := writeConfig(t, "aliases:\n  a: b\n  b: a\n")

	_, err := run(t, "get", "a", "--config", path, "--env-file", "")
	assert.Error(t, err)

	_, err = run(t, "validate", "--config", path, "--env-file", "")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "ids", "--log-level", "loud", "--env-file", "")
	assert.Error(t, err)
}
