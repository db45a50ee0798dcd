// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testImage builds a small bitmap with non-uniform content.
func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 32), G: uint8(y * 32), B: 128, A: 255})
		}
	}
	return img
}

func TestEncodeBase64PNGDeterministic(t *testing.T) {
	img := testImage()

	first, err := EncodeBase64PNG(img)
	if err != nil {
		t.Fatalf("EncodeBase64PNG: %v", err)
	}
	second, err := EncodeBase64PNG(img)
	if err != nil {
		t.Fatalf("EncodeBase64PNG: %v", err)
	}

	if first != second {
		t.Error("encoding the same image twice produced different output")
	}
	if first == "" {
		t.Error("encoding produced empty output")
	}
}

func TestEncodeBase64PNGRoundTrip(t *testing.T) {
	img := testImage()

	encoded, err := EncodeBase64PNG(img)
	if err != nil {
		t.Fatalf("EncodeBase64PNG: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("output is not valid base64: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("payload is not valid PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
