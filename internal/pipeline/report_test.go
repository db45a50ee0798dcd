// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf2md/pkg/types"
)

func TestBuildReport(t *testing.T) {
	summary := Summary{
		Statuses:    []types.PageStatus{types.PageTranscribed, types.PageFailed, types.PageTranscribed},
		Transcribed: 2,
		Failed:      1,
	}

	report := BuildReport("deck.pdf", "deck.md", "claude-sonnet-4-5", summary)

	assert.Equal(t, "deck.pdf", report.Input)
	assert.Equal(t, "deck.md", report.Output)
	assert.Equal(t, "claude-sonnet-4-5", report.Model)
	assert.NotEmpty(t, report.CompletedAt)
	assert.Equal(t, 2, report.Transcribed)
	assert.Equal(t, 1, report.Failed)

	require.Len(t, report.Pages, 3)
	assert.Equal(t, PageReport{Number: 1, Status: types.PageTranscribed}, report.Pages[0])
	assert.Equal(t, PageReport{Number: 2, Status: types.PageFailed}, report.Pages[1])
	assert.Equal(t, PageReport{Number: 3, Status: types.PageTranscribed}, report.Pages[2])
}

func TestWriteReportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	report := BuildReport("deck.pdf", "deck.md", "claude-sonnet-4-5", Summary{
		Statuses:    []types.PageStatus{types.PageTranscribed},
		Transcribed: 1,
	})

	require.NoError(t, WriteReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, report, got)
}
