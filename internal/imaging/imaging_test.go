// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

// transparentPNG builds a PNG with a transparent background and an opaque
// blue square in the middle.
func transparentPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := h / 4; y < 3*h/4; y++ {
		for x := w / 4; x < 3*w/4; x++ {
			img.Set(x, y, color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestToJPEG(t *testing.T) {
	data := transparentPNG(t, 64, 64)

	out, err := ToJPEG(data, 0)
	if err != nil {
		t.Fatalf("ToJPEG: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid JPEG: %v", err)
	}

	if decoded.Bounds().Dx() != 64 || decoded.Bounds().Dy() != 64 {
		t.Errorf("dimensions: got %v, want 64x64", decoded.Bounds())
	}

	// The transparent corner must have become white (allowing JPEG noise).
	r, g, b, _ := decoded.At(1, 1).RGBA()
	for name, v := range map[string]uint32{"r": r >> 8, "g": g >> 8, "b": b >> 8} {
		if v < 240 {
			t.Errorf("corner %s channel: got %d, want near 255 (white background)", name, v)
		}
	}
}

func TestToJPEGInvalidInput(t *testing.T) {
	_, err := ToJPEG([]byte("not an image"), 0)
	if err == nil {
		t.Fatal("expected error for invalid image data")
	}
}

func TestScaleDownscales(t *testing.T) {
	data := transparentPNG(t, 200, 100)

	out, err := Scale(data, 100, 0)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid JPEG: %v", err)
	}
	if decoded.Bounds().Dx() != 100 {
		t.Errorf("width: got %d, want 100", decoded.Bounds().Dx())
	}
	if decoded.Bounds().Dy() != 50 {
		t.Errorf("height: got %d, want 50 (aspect preserved)", decoded.Bounds().Dy())
	}
}

func TestScaleSkipsUpscaling(t *testing.T) {
	data := transparentPNG(t, 64, 64)

	out, err := Scale(data, 512, 0)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid JPEG: %v", err)
	}
	if decoded.Bounds().Dx() != 64 {
		t.Errorf("width: got %d, want original 64 (no upscaling)", decoded.Bounds().Dx())
	}
}
