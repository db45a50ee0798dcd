// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
)

// EncodePNG re-encodes img as PNG. PNG is lossless, which matters for
// slide text and line diagrams.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeBase64PNG returns the base64 form of img's PNG encoding, ready
// for an image content block in an API request. Deterministic: the same
// image always yields the same string.
func EncodeBase64PNG(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
