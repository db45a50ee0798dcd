// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf2md/internal/secrets"
)

// withEmptySecretsDir points the credential fallback at a directory that
// does not exist, so only the environment variable can supply a key.
func withEmptySecretsDir(t *testing.T) {
	t.Helper()
	orig := secretsDir
	secretsDir = filepath.Join(t.TempDir(), "no-secrets")
	t.Cleanup(func() { secretsDir = orig })
}

func TestRunTranscribeMissingCredential(t *testing.T) {
	withEmptySecretsDir(t)
	t.Setenv(secrets.EnvVar, "")

	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "deck.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("fake pdf"), 0o644))
	outPath := filepath.Join(dir, "deck.md")

	err := runTranscribe(rootCmd, []string{pdfPath, outPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), secrets.EnvVar)

	// The run must abort before any file-write activity.
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "output written despite missing credential")
}

func TestRunTranscribeMissingInput(t *testing.T) {
	withEmptySecretsDir(t)
	t.Setenv(secrets.EnvVar, "sk-test-key")

	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "missing.pdf")
	outPath := filepath.Join(dir, "missing.md")

	err := runTranscribe(rootCmd, []string{pdfPath, outPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDF file not found")
	assert.Contains(t, err.Error(), pdfPath)

	// The run must abort before the renderer produces anything.
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "output written despite missing input")
}
