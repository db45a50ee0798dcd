// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives the render, encode, transcribe, and assemble
// stages for one document, strictly in page order.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/pdf2md/internal/assemble"
	"github.com/pdiddy/pdf2md/internal/render"
	"github.com/pdiddy/pdf2md/internal/transcribe"
	"github.com/pdiddy/pdf2md/pkg/types"
)

// Renderer rasterizes a document into ordered page images. Implemented by
// render.Fitz; tests supply fakes.
type Renderer interface {
	Render(pdfPath string) ([]types.Page, error)
}

// Summary holds per-page outcomes from one run.
type Summary struct {
	// Statuses records the outcome of each page, in page order.
	Statuses []types.PageStatus

	Transcribed int
	Failed      int
}

// Total returns the number of pages processed.
func (s Summary) Total() int {
	return s.Transcribed + s.Failed
}

// HasFailures reports whether any page failed transcription.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run processes one document: every page is rendered, encoded, and
// transcribed sequentially, then the results are assembled and written to
// outputPath. A page that fails transcription contributes an inline error
// string and the run continues; the Nth rendered page always occupies the
// Nth section of the output. Progress is printed to w.
func Run(ctx context.Context, r Renderer, b transcribe.Backend, pdfPath, outputPath string, w io.Writer) (Summary, error) {
	fmt.Fprintf(w, "Converting PDF to images: %s\n", pdfPath)

	pages, err := r.Render(pdfPath)
	if err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(w, "Converted %d pages\n", len(pages))

	var summary Summary
	transcriptions := make([]string, 0, len(pages))

	for _, page := range pages {
		fmt.Fprintf(w, "\nProcessing page %d/%d\n", page.Number, len(pages))

		imageB64, err := render.EncodeBase64PNG(page.Image)
		if err != nil {
			return summary, fmt.Errorf("encoding page %d: %w", page.Number, err)
		}

		text, ok := transcribe.Page(ctx, b, imageB64, page.Number)
		transcriptions = append(transcriptions, text)

		if ok {
			summary.Statuses = append(summary.Statuses, types.PageTranscribed)
			summary.Transcribed++
			fmt.Fprintf(w, "Page %d transcription completed\n", page.Number)
		} else {
			summary.Statuses = append(summary.Statuses, types.PageFailed)
			summary.Failed++
			fmt.Fprintf(w, "Page %d transcription failed\n", page.Number)
		}
	}

	if err := assemble.Write(outputPath, assemble.Document(transcriptions)); err != nil {
		return summary, err
	}
	fmt.Fprintf(w, "\nOutput saved to: %s\n", outputPath)

	return summary, nil
}
