// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package svg

import (
	"strings"
	"testing"

	"logoforge/internal/models"
)

func TestRenderContainsNameAndColors(t *testing.T) {
	out := Render("Acme", models.StyleModern, []string{"#3b82f6", "#1e40af"}, 0)

	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(out, "</svg>") {
		t.Fatalf("output is not an SVG document: %q", out)
	}
	if !strings.Contains(out, ">Acme<") {
		t.Errorf("business name missing from output: %q", out)
	}
	if !strings.Contains(out, "#3b82f6") {
		t.Error("primary color missing from output")
	}
	if !strings.Contains(out, "#1e40af") {
		t.Error("secondary color missing from output")
	}
}

func TestRenderEveryStyle(t *testing.T) {
	for _, style := range models.StyleTypes {
		out := Render("Acme", style, []string{"#112233"}, 0)
		if !strings.Contains(out, "Acme") {
			t.Errorf("style %s: name missing", style)
		}
		if !strings.Contains(out, "#112233") {
			t.Errorf("style %s: color missing", style)
		}
	}
}

func TestRenderEscapesName(t *testing.T) {
	out := Render(`<Acme & "Co">`, models.StyleBold, []string{"#000000"}, 0)

	if strings.Contains(out, "<Acme") {
		t.Error("raw angle bracket leaked into SVG")
	}
	if !strings.Contains(out, "&amp;") {
		t.Error("ampersand not escaped")
	}
	if !strings.Contains(out, "&lt;Acme") {
		t.Error("opening bracket not escaped")
	}
}

func TestRenderUnknownStyleFallsBackToModern(t *testing.T) {
	unknown := Render("Acme", models.StyleType("brutalist"), []string{"#3b82f6"}, 0)
	modern := Render("Acme", models.StyleModern, []string{"#3b82f6"}, 0)
	if unknown != modern {
		t.Error("unknown style should render with the modern templates")
	}
}

func TestRenderVariationWrapsAround(t *testing.T) {
	colors := []string{"#3b82f6", "#1e40af"}
	n := TemplateCount(models.StyleModern)
	if n < 2 {
		t.Fatalf("modern should have at least 2 templates, got %d", n)
	}

	v0 := Render("Acme", models.StyleModern, colors, 0)
	v1 := Render("Acme", models.StyleModern, colors, 1)
	wrapped := Render("Acme", models.StyleModern, colors, n)

	if v0 == v1 {
		t.Error("variations 0 and 1 should use different layouts")
	}
	if wrapped != v0 {
		t.Error("variation index should wrap around the template set")
	}
}

func TestRenderDefaultColors(t *testing.T) {
	out := Render("Acme", models.StyleElegant, nil, 0)
	if !strings.Contains(out, "#000000") {
		t.Error("missing palette should fall back to black")
	}
}

func TestRenderSingleColorAccent(t *testing.T) {
	// Templates with a white accent dot substitute white when the palette
	// has no distinct secondary color.
	out := Render("Acme", models.StylePlayful, []string{"#ff6347"}, 0)
	if !strings.Contains(out, "#ffffff") {
		t.Error("single-color palette should produce a white accent")
	}
}
