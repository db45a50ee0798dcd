// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2md/internal/assemble"
	"github.com/pdiddy/pdf2md/internal/pipeline"
	"github.com/pdiddy/pdf2md/internal/render"
	"github.com/pdiddy/pdf2md/internal/secrets"
	"github.com/pdiddy/pdf2md/internal/transcribe"
	"github.com/pdiddy/pdf2md/pkg/types"
)

const (
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 4096
	defaultDPI       = 300
	defaultTimeout   = 5 * time.Minute
)

// secretsDir is where the API key file lives. Package-level var for test substitution.
var secretsDir = ".secrets/"

func init() {
	rootCmd.Flags().String("model", "", "AI model identifier (default claude-sonnet-4-5)")
	rootCmd.Flags().Int("max-tokens", 0, "output token budget per page (default 4096)")
	rootCmd.Flags().Float64("dpi", 0, "page rasterization resolution (default 300)")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout per page (default 5m)")
	rootCmd.Flags().String("debug-dir", "", "directory to save rendered page images (diagnostic)")
	rootCmd.Flags().String("report", "", "write a YAML run report to this path")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	// Credential and input checks happen before any render or network
	// activity; both are fatal.
	apiKey := secrets.APIKey(secretsDir)
	if apiKey == "" {
		return fmt.Errorf("%s environment variable not set", secrets.EnvVar)
	}

	pdfPath := args[0]
	if _, err := os.Stat(pdfPath); err != nil {
		return fmt.Errorf("PDF file not found: %s", pdfPath)
	}

	var explicit string
	if len(args) > 1 {
		explicit = args[1]
	}

	cfg := transcribeConfig(cmd, apiKey)

	renderer := render.NewFitz(cfg.Render)
	backend := &transcribe.ClaudeBackend{
		APIKey:    cfg.Transcription.APIKey,
		Model:     cfg.Transcription.Model,
		MaxTokens: cfg.Transcription.MaxTokens,
		Client:    &http.Client{Timeout: cfg.Transcription.Timeout},
	}
	outputPath := assemble.OutputPath(pdfPath, explicit)

	summary, err := pipeline.Run(cmd.Context(), renderer, backend, pdfPath, outputPath, os.Stdout)
	if err != nil {
		return err
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		report := pipeline.BuildReport(pdfPath, outputPath, cfg.Transcription.Model, summary)
		if err := pipeline.WriteReport(reportPath, report); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Report saved to: %s\n", reportPath)
	}

	// Per-page failures are reported in-band; the run still succeeds.
	fmt.Fprintf(os.Stdout, "\nProcessing complete: %d transcribed, %d failed (total: %d)\n",
		summary.Transcribed, summary.Failed, summary.Total())
	return nil
}

// transcribeConfig resolves settings in precedence order: flag, then
// config file or environment via viper, then baked-in default.
func transcribeConfig(cmd *cobra.Command, apiKey string) types.PipelineConfig {
	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = viper.GetString("model")
	}
	if model == "" {
		model = defaultModel
	}

	maxTokens, _ := cmd.Flags().GetInt("max-tokens")
	if maxTokens == 0 {
		maxTokens = viper.GetInt("max_tokens")
	}
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	dpi, _ := cmd.Flags().GetFloat64("dpi")
	if dpi == 0 {
		dpi = viper.GetFloat64("dpi")
	}
	if dpi == 0 {
		dpi = defaultDPI
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	debugDir, _ := cmd.Flags().GetString("debug-dir")
	if debugDir == "" {
		debugDir = viper.GetString("debug_dir")
	}

	return types.PipelineConfig{
		Render: types.RenderConfig{
			DPI:      dpi,
			DebugDir: debugDir,
		},
		Transcription: types.TranscriptionConfig{
			Model:     model,
			APIKey:    apiKey,
			MaxTokens: maxTokens,
			Timeout:   timeout,
		},
	}
}
