// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the Anthropic API credential. The environment
// variable takes precedence; a .secrets/ directory of plain-text key
// files (filename is the key name, trimmed contents are the value) is
// the fallback for development setups.
//
// Supported key file: anthropic-api-key.
package secrets

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvVar is the environment variable holding the Anthropic API key.
const EnvVar = "ANTHROPIC_API_KEY"

// keyFile is the name of the API key file inside the secrets directory.
const keyFile = "anthropic-api-key"

// APIKey returns the Anthropic API key: the ANTHROPIC_API_KEY environment
// variable if set, otherwise the trimmed contents of dir/anthropic-api-key.
// Returns the empty string when neither source provides a value; the
// caller decides whether that is fatal.
func APIKey(dir string) string {
	if v := strings.TrimSpace(os.Getenv(EnvVar)); v != "" {
		return v
	}

	data, err := os.ReadFile(filepath.Join(dir, keyFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
