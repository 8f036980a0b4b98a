package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CURATOR_CONFIG", filepath.Join(dir, "config.toml"))
	t.Setenv("CURATOR_STATE_DIR", filepath.Join(dir, "state"))
	t.Setenv("CURATOR_STORAGE_BACKEND", "")
	t.Setenv("CURATOR_CATALOG", "")
	return dir
}

func TestRun_Version(t *testing.T) {
	setupEnv(t)
	var out, errOut bytes.Buffer

	require.NoError(t, run([]string{"--version"}, &out, &errOut))
	assert.Contains(t, out.String(), "dev")
}

func TestRun_SavedIssuesSurviveRestart(t *testing.T) {
	setupEnv(t)
	var out, errOut bytes.Buffer

	require.NoError(t, run([]string{"save", "pandas-554"}, &out, &errOut))
	assert.Contains(t, out.String(), "Saved pandas-554")

	out.Reset()
	require.NoError(t, run([]string{"saved"}, &out, &errOut))
	assert.Contains(t, out.String(), "pandas-554")
}

func TestRun_UnknownIssue(t *testing.T) {
	setupEnv(t)
	var out, errOut bytes.Buffer

	err := run([]string{"show", "nope-1"}, &out, &errOut)
	assert.ErrorContains(t, err, "issue not found")
}
