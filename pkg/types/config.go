// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RenderConfig holds settings for the page rendering stage.
type RenderConfig struct {
	// DPI is the rasterization resolution. Higher values improve text
	// recognition at the cost of larger request payloads (default 300).
	DPI float64 `json:"dpi" yaml:"dpi"`

	// DebugDir, when set, is a directory where each rendered page is
	// saved as page_<n>.png. Diagnostic only; empty disables the dump.
	DebugDir string `json:"debug_dir,omitempty" yaml:"debug_dir,omitempty"`
}

// TranscriptionConfig holds settings for the transcription stage.
type TranscriptionConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens is the output token budget per page (default 4096).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Timeout is the HTTP request timeout for a single page.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// PipelineConfig groups the stage configurations for one run.
type PipelineConfig struct {
	Render        RenderConfig        `json:"render" yaml:"render"`
	Transcription TranscriptionConfig `json:"transcription" yaml:"transcription"`
}
