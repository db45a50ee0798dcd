// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf2md/pkg/types"
)

// Report is an optional YAML record of one run, written alongside the
// output document when requested. It never alters the document itself.
type Report struct {
	Input       string       `yaml:"input"`
	Output      string       `yaml:"output"`
	Model       string       `yaml:"model"`
	CompletedAt string       `yaml:"completed_at"`
	Pages       []PageReport `yaml:"pages"`
	Transcribed int          `yaml:"transcribed"`
	Failed      int          `yaml:"failed"`
}

// PageReport records the outcome of one page.
type PageReport struct {
	Number int              `yaml:"number"`
	Status types.PageStatus `yaml:"status"`
}

// BuildReport assembles a Report from a run summary.
func BuildReport(input, output, model string, s Summary) Report {
	r := Report{
		Input:       input,
		Output:      output,
		Model:       model,
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
		Transcribed: s.Transcribed,
		Failed:      s.Failed,
	}
	for i, status := range s.Statuses {
		r.Pages = append(r.Pages, PageReport{Number: i + 1, Status: status})
	}
	return r
}

// WriteReport marshals the report to a YAML file.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
