// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging converts generated logo images between download formats.
// JPEG has no alpha channel, so transparent PNG logos are composited onto
// a white canvas before encoding.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png" // register PNG decoder

	xdraw "golang.org/x/image/draw"
)

// DefaultJPEGQuality matches what browsers produce for canvas exports.
const DefaultJPEGQuality = 90

// ToJPEG re-encodes an image as JPEG with a white background. quality 0
// uses DefaultJPEGQuality.
func ToJPEG(data []byte, quality int) ([]byte, error) {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	bounds := src.Bounds()
	canvas := image.NewRGBA(bounds)
	xdraw.Draw(canvas, bounds, &image.Uniform{C: color.White}, image.Point{}, xdraw.Src)
	xdraw.Draw(canvas, bounds, src, bounds.Min, xdraw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("imaging: encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Scale resizes an image to the target width, preserving aspect ratio,
// and re-encodes it as JPEG on a white background. Upscaling is skipped;
// images at or below the target width are converted unchanged.
func Scale(data []byte, targetWidth, quality int) ([]byte, error) {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	if targetWidth <= 0 || width <= targetWidth {
		return ToJPEG(data, quality)
	}

	height := bounds.Dy() * targetWidth / width
	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, height))
	xdraw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, xdraw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("imaging: encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
