// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render rasterizes PDF pages into in-memory images.
package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"

	"github.com/pdiddy/pdf2md/pkg/types"
)

// Fitz renders PDF pages with MuPDF via go-fitz.
type Fitz struct {
	cfg types.RenderConfig
}

// NewFitz creates a renderer with the given settings.
func NewFitz(cfg types.RenderConfig) *Fitz {
	return &Fitz{cfg: cfg}
}

// Render rasterizes every page of the PDF at pdfPath, in document order.
// Page numbers are 1-indexed. When a debug directory is configured, each
// page is also saved there as page_<n>.png; the directory is created if
// absent. The dump is diagnostic only and does not affect the returned
// pages.
func (f *Fitz) Render(pdfPath string) ([]types.Page, error) {
	if _, err := os.Stat(pdfPath); err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer doc.Close()

	if f.cfg.DebugDir != "" {
		if err := os.MkdirAll(f.cfg.DebugDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating debug directory %s: %w", f.cfg.DebugDir, err)
		}
	}

	pages := make([]types.Page, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, f.cfg.DPI)
		if err != nil {
			return nil, fmt.Errorf("rendering page %d of %s: %w", i+1, pdfPath, err)
		}

		if f.cfg.DebugDir != "" {
			if err := savePage(f.cfg.DebugDir, i+1, img); err != nil {
				return nil, err
			}
		}

		pages = append(pages, types.Page{Number: i + 1, Image: img})
	}

	return pages, nil
}

// savePage writes one page image to dir/page_<n>.png.
func savePage(dir string, number int, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encoding page %d: %w", number, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("page_%d.png", number))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("saving page image %s: %w", path, err)
	}
	return nil
}
