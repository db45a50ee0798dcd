// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf2md CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdf2md CLI. The pipeline runs
// directly on the root command; only version is a subcommand.
var rootCmd = &cobra.Command{
	Use:   "pdf2md <pdf-file> [output-file]",
	Short: "Transcribe a PDF slide deck to Markdown via the Claude API",
	Long: `pdf2md renders each page of a PDF to an image, submits it to the Claude
Messages API for transcription, and joins the per-page results into one
Markdown document. Equations are transcribed as LaTeX and diagram content
is described in prose.

Pages are processed sequentially. A page that fails transcription appears
in the output as an inline error string; the run continues and still
exits successfully.

The ANTHROPIC_API_KEY environment variable must be set (or the key placed
in .secrets/anthropic-api-key).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTranscribe,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf2md.yaml or ~/.config/pdf2md/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf2md"))
		}
	}

	viper.SetEnvPrefix("PDF2MD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
