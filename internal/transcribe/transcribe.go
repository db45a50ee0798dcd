// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcribe turns encoded page images into Markdown text via a
// multimodal AI API.
package transcribe

import (
	"context"
	"errors"
	"fmt"
)

// Backend abstracts the transcription API so tests can supply a stub.
// Each call handles a single page image and returns the raw Markdown
// transcription.
type Backend interface {
	Transcribe(ctx context.Context, imageB64 string) (string, error)
}

// ErrEmptyContent indicates a well-formed API response that carried no
// text content block.
var ErrEmptyContent = errors.New("response contained no text content")

// APIError is a non-2xx response from the transcription API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d - %s", e.StatusCode, e.Body)
}

// Page transcribes one encoded page image. Any failure is converted into
// an inline error string naming the page, so the caller can continue with
// the remaining pages; Page never aborts the run. The returned ok flag
// reports whether the transcription succeeded; the strings themselves are
// indistinguishable downstream, matching the in-band error reporting of
// the output document.
func Page(ctx context.Context, b Backend, imageB64 string, number int) (text string, ok bool) {
	text, err := b.Transcribe(ctx, imageB64)
	switch {
	case err == nil:
		return text, true
	case errors.Is(err, ErrEmptyContent):
		return fmt.Sprintf("Error: Unexpected response format for page %d", number), false
	default:
		return fmt.Sprintf("Error transcribing page %d: %v", number, err), false
	}
}
