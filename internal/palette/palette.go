// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package palette derives color palette variations for the local SVG
// generation strategy. Variations are produced by rotating the hue of every
// base color while keeping saturation and value, so repeated calls with the
// same input yield byte-identical output.
package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// hueStep is the hue rotation applied per variation, in degrees.
const hueStep = 36.0

// Parse validates a hex color string ("#RRGGBB" or "#RGB") and returns its
// canonical lowercase "#rrggbb" form.
func Parse(hex string) (string, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		return "", fmt.Errorf("palette: color %q must start with '#'", hex)
	}
	// Expand shorthand #abc to #aabbcc before parsing.
	if len(hex) == 4 {
		hex = fmt.Sprintf("#%c%c%c%c%c%c", hex[1], hex[1], hex[2], hex[2], hex[3], hex[3])
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return "", fmt.Errorf("palette: invalid color %q: %w", hex, err)
	}
	return c.Hex(), nil
}

// Rotate shifts the hue of a hex color by the given number of degrees,
// preserving saturation and value.
func Rotate(hex string, degrees float64) (string, error) {
	c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(hex)))
	if err != nil {
		return "", fmt.Errorf("palette: invalid color %q: %w", hex, err)
	}
	h, s, v := c.Hsv()
	h += degrees
	for h >= 360 {
		h -= 360
	}
	for h < 0 {
		h += 360
	}
	return colorful.Hsv(h, s, v).Hex(), nil
}

// Variations produces count palettes derived from the base colors. The first
// variation is the base palette unchanged; variation k rotates every color's
// hue by k*36 degrees. count must be at least 1.
func Variations(base []string, count int) ([][]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("palette: count must be >= 1, got %d", count)
	}
	if len(base) == 0 {
		return nil, fmt.Errorf("palette: base palette is empty")
	}

	canonical := make([]string, len(base))
	for i, hex := range base {
		c, err := Parse(hex)
		if err != nil {
			return nil, err
		}
		canonical[i] = c
	}

	variations := make([][]string, 0, count)
	variations = append(variations, canonical)

	for k := 1; k < count; k++ {
		rotated := make([]string, len(canonical))
		for i, hex := range canonical {
			c, err := Rotate(hex, float64(k)*hueStep)
			if err != nil {
				return nil, err
			}
			rotated[i] = c
		}
		variations = append(variations, rotated)
	}

	return variations, nil
}
