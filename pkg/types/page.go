// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "image"

// Page is one rendered page of the source document. Number is 1-indexed
// and is the page's sole durable identity through the pipeline.
type Page struct {
	// Number is the 1-indexed position of the page in the document.
	Number int `json:"number" yaml:"number"`

	// Image is the rasterized page bitmap. Owned by the stage that
	// produced it until the next stage consumes it.
	Image image.Image `json:"-" yaml:"-"`
}

// PageStatus indicates the outcome of transcribing one page.
type PageStatus string

const (
	PageTranscribed PageStatus = "transcribed"
	PageFailed      PageStatus = "failed"
)
