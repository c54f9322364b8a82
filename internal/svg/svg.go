// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package svg synthesizes simple inline SVG logos from a fixed set of layout
// templates. Each style maps to one or more templates; the variation index
// selects among them. Output is deterministic for a given input.
package svg

import (
	"encoding/xml"
	"fmt"
	"strings"

	"logoforge/internal/models"
)

// template renders one SVG layout for a business name and palette.
// colors always has at least one entry; secondary falls back to the
// primary color (or white where the original design used white).
type template func(name, primary, secondary string) string

var templates = map[models.StyleType][]template{
	models.StyleModern: {
		func(name, primary, secondary string) string {
			return fmt.Sprintf(`<svg viewBox="0 0 300 120" xmlns="http://www.w3.org/2000/svg"><defs><linearGradient id="grad1" x1="0%%" y1="0%%" x2="100%%" y2="100%%"><stop offset="0%%" style="stop-color:%s;stop-opacity:1"/><stop offset="100%%" style="stop-color:%s;stop-opacity:1"/></linearGradient></defs><rect x="20" y="30" width="60" height="60" rx="15" fill="url(#grad1)"/><text x="100" y="70" font-family="Arial, sans-serif" font-size="32" font-weight="600" fill="%s">%s</text></svg>`,
				primary, secondary, primary, name)
		},
		func(name, primary, secondary string) string {
			return fmt.Sprintf(`<svg viewBox="0 0 300 120" xmlns="http://www.w3.org/2000/svg"><circle cx="50" cy="60" r="30" fill="%s"/><circle cx="60" cy="50" r="8" fill="%s"/><text x="100" y="70" font-family="Arial, sans-serif" font-size="28" font-weight="500" fill="%s">%s</text></svg>`,
				primary, secondaryOrWhite(primary, secondary), primary, name)
		},
	},
	models.StyleProfessional: {
		func(name, primary, secondary string) string {
			return fmt.Sprintf(`<svg viewBox="0 0 300 120" xmlns="http://www.w3.org/2000/svg"><rect x="20" y="40" width="50" height="40" fill="%s"/><rect x="25" y="35" width="50" height="40" fill="none" stroke="%s" stroke-width="2"/><text x="90" y="70" font-family="Times, serif" font-size="30" font-weight="bold" fill="%s">%s</text></svg>`,
				primary, secondary, primary, name)
		},
	},
	models.StylePlayful: {
		func(name, primary, secondary string) string {
			return fmt.Sprintf(`<svg viewBox="0 0 300 120" xmlns="http://www.w3.org/2000/svg"><polygon points="50,20 80,40 70,80 30,80 20,40" fill="%s"/><circle cx="45" cy="45" r="8" fill="%s"/><text x="100" y="70" font-family="Comic Sans MS, cursive" font-size="28" font-weight="bold" fill="%s">%s</text></svg>`,
				primary, secondaryOrWhite(primary, secondary), primary, name)
		},
	},
	models.StyleVintage: {
		func(name, primary, secondary string) string {
			return fmt.Sprintf(`<svg viewBox="0 0 300 120" xmlns="http://www.w3.org/2000/svg"><circle cx="50" cy="60" r="32" fill="none" stroke="%s" stroke-width="3"/><circle cx="50" cy="60" r="25" fill="none" stroke="%s" stroke-width="1"/><line x1="30" y1="60" x2="70" y2="60" stroke="%s" stroke-width="2"/><text x="95" y="70" font-family="Georgia, serif" font-size="28" font-style="italic" fill="%s">%s</text></svg>`,
				primary, secondary, primary, primary, name)
		},
	},
	models.StyleBold: {
		func(name, primary, secondary string) string {
			return fmt.Sprintf(`<svg viewBox="0 0 300 120" xmlns="http://www.w3.org/2000/svg"><rect x="20" y="25" width="25" height="70" fill="%s"/><rect x="50" y="40" width="25" height="55" fill="%s"/><text x="95" y="75" font-family="Arial Black, sans-serif" font-size="30" font-weight="900" fill="%s">%s</text></svg>`,
				primary, secondary, primary, name)
		},
	},
	models.StyleElegant: {
		func(name, primary, secondary string) string {
			return fmt.Sprintf(`<svg viewBox="0 0 300 120" xmlns="http://www.w3.org/2000/svg"><path d="M30 80 Q 50 20 70 80" fill="none" stroke="%s" stroke-width="2"/><circle cx="50" cy="46" r="4" fill="%s"/><text x="90" y="70" font-family="Didot, serif" font-size="28" letter-spacing="2" fill="%s">%s</text></svg>`,
				primary, secondary, primary, name)
		},
	},
}

// Render builds the SVG markup for one logo variation. Unknown styles fall
// back to the modern templates, matching the behaviour of the analysis
// heuristic's default recommendation.
func Render(businessName string, style models.StyleType, colors []string, variation int) string {
	set, ok := templates[style]
	if !ok {
		set = templates[models.StyleModern]
	}
	tmpl := set[variation%len(set)]

	primary := "#000000"
	if len(colors) > 0 {
		primary = colors[0]
	}
	secondary := primary
	if len(colors) > 1 {
		secondary = colors[1]
	}

	return tmpl(escape(businessName), primary, secondary)
}

// TemplateCount returns how many distinct layouts exist for a style.
func TemplateCount(style models.StyleType) int {
	if set, ok := templates[style]; ok {
		return len(set)
	}
	return len(templates[models.StyleModern])
}

// escape makes a business name safe for embedding in SVG text content.
func escape(s string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		// EscapeText only fails on writer errors, which strings.Builder
		// never returns.
		return ""
	}
	return sb.String()
}

// secondaryOrWhite returns white when no distinct secondary color exists,
// matching the original template designs that used a white accent dot.
func secondaryOrWhite(primary, secondary string) string {
	if secondary == primary {
		return "#ffffff"
	}
	return secondary
}
