// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble joins per-page transcriptions into a single Markdown
// document and writes it to disk.
package assemble

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// separator divides page sections in the output document.
var separator = strings.Repeat("=", 80)

// Document concatenates per-page transcriptions in order. Each page
// becomes a level-1 "Page <n>" header, the transcription body, and a
// separator line; pages are joined with a blank line. Transcriptions and
// recovered per-page error strings are treated identically here.
func Document(transcriptions []string) string {
	sections := make([]string, len(transcriptions))
	for i, text := range transcriptions {
		sections[i] = fmt.Sprintf("# Page %d\n\n%s\n\n%s\n", i+1, text, separator)
	}
	return strings.Join(sections, "\n")
}

// OutputPath resolves where the document is written: the explicit path if
// given, otherwise the input path with its extension replaced by .md.
func OutputPath(pdfPath, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".md"
}

// Write stores the document at path, overwriting any existing file.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing output %s: %w", path, err)
	}
	return nil
}
