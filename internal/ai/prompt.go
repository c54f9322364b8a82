// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"strings"

	"logoforge/internal/models"
)

// maxPromptLen caps prompt length; Imagen rejects overly long prompts.
const maxPromptLen = 400

// basePrompts maps each style to its natural-language prompt template.
// {name} and {colors} are substituted at build time.
var basePrompts = map[models.StyleType]string{
	models.StyleModern:       "A clean, minimalist logo for {name}. Simple geometric design with {colors} colors on white background. Professional vector style, high contrast, crisp edges.",
	models.StyleVintage:      "A vintage-style logo for {name}. Classic retro design with {colors} colors on white background. Traditional typography, decorative elements.",
	models.StyleBold:         "A bold, impactful logo for {name}. Strong, powerful design with {colors} colors on white background. Thick lines, dramatic contrast.",
	models.StyleElegant:      "An elegant, sophisticated logo for {name}. Refined luxury design with {colors} colors on white background. Graceful curves, premium feel.",
	models.StylePlayful:      "A fun, creative logo for {name}. Playful design with {colors} colors on white background. Friendly, approachable style.",
	models.StyleProfessional: "A professional, corporate logo for {name}. Business-appropriate design with {colors} colors on white background. Trustworthy, reliable appearance.",
}

// colorNames converts common hex palette entries to natural language for
// the prompt. Unknown colors fall back to "blue".
var colorNames = map[string]string{
	"#3b82f6": "blue", "#1e40af": "navy blue",
	"#ef4444": "red", "#dc2626": "dark red",
	"#10b981": "green", "#059669": "emerald green",
	"#f59e0b": "orange", "#d97706": "amber orange",
	"#8b5cf6": "purple", "#7c3aed": "violet purple",
	"#6b7280": "gray", "#374151": "dark gray",
	"#ec4899": "pink", "#be185d": "deep pink",
	"#14b8a6": "teal", "#0d9488": "dark teal",
	"#000000": "black", "#ffffff": "white",
}

// descriptionContexts maps trigger words found in the business description
// to a contextual prompt fragment. First match wins.
var descriptionContexts = []struct {
	words    []string
	fragment string
}{
	{[]string{"tech", "software", "digital", "app", "platform", "system"}, "incorporating subtle tech-inspired elements"},
	{[]string{"food", "restaurant", "cafe", "kitchen", "dining"}, "with food-related symbolic elements"},
	{[]string{"health", "medical", "wellness", "fitness", "care"}, "featuring health and wellness symbolism"},
	{[]string{"finance", "money", "investment", "banking", "financial"}, "with financial stability and trust symbols"},
	{[]string{"education", "school", "learning", "teaching", "training"}, "incorporating educational and growth elements"},
	{[]string{"creative", "design", "art", "artistic", "studio"}, "with creative and artistic flair"},
	{[]string{"service", "consulting", "professional", "expert"}, "emphasizing professionalism and expertise"},
	{[]string{"eco", "green", "sustainable", "environment", "natural"}, "with eco-friendly and natural elements"},
	{[]string{"luxury", "premium", "high-end", "exclusive"}, "with luxury and premium aesthetics"},
	{[]string{"fun", "entertainment", "game", "play", "joy"}, "with playful and entertaining elements"},
}

// industryContexts adds an industry flavour when the description matched
// nothing related.
var industryContexts = map[string]string{
	"technology":    "with modern technology aesthetics",
	"healthcare":    "conveying trust and care",
	"finance":       "symbolizing stability and growth",
	"retail":        "appealing to consumers with inviting design",
	"education":     "inspiring learning and development",
	"real estate":   "representing stability and home",
	"consulting":    "projecting expertise and reliability",
	"food":          "with appetizing and welcoming elements",
	"creative":      "showcasing creativity and innovation",
	"manufacturing": "representing quality and precision",
}

// audienceContexts maps target-audience trigger words to prompt fragments.
var audienceContexts = []struct {
	words    []string
	fragment string
}{
	{[]string{"young", "millennial", "gen z", "youth"}, "with contemporary appeal for younger demographics"},
	{[]string{"professional", "business", "corporate"}, "tailored for professional audiences"},
	{[]string{"family", "parent", "children", "kids"}, "family-friendly and approachable"},
	{[]string{"luxury", "affluent", "premium", "high-income"}, "designed for discerning, upscale clientele"},
}

// variationApproaches are rotated across variations so each prompt differs.
var variationApproaches = []string{
	"",
	"with subtle gradients and modern typography",
	"featuring clean geometric shapes and professional styling",
	"incorporating elegant design elements and premium finish",
	"with contemporary aesthetics and refined details",
	"emphasizing brand recognition and memorability",
	"with balanced composition and visual hierarchy",
	"featuring distinctive character and market appeal",
}

// BuildPrompts constructs one natural-language prompt per requested
// variation from the business and style fields. Deterministic for a given
// request.
func BuildPrompts(info models.BusinessInfo, style models.StyleConfig, variations int) []string {
	safeName := strings.TrimSpace(strings.ReplaceAll(info.Name, "&", "and"))

	// Convert up to two palette colors to natural language.
	var names []string
	for _, c := range style.ColorPalette {
		if len(names) == 2 {
			break
		}
		name, ok := colorNames[strings.ToLower(c)]
		if !ok {
			name = "blue"
		}
		names = append(names, name)
	}
	colorText := "blue"
	if len(names) > 0 {
		colorText = strings.Join(names, " and ")
	}

	base, ok := basePrompts[style.StyleType]
	if !ok {
		base = basePrompts[models.StyleModern]
	}
	base = strings.ReplaceAll(base, "{name}", safeName)
	base = strings.ReplaceAll(base, "{colors}", colorText)

	contexts := buildContexts(info)

	prompts := make([]string, 0, variations)
	for i := 0; i < variations; i++ {
		parts := []string{base}
		if len(contexts) > 0 {
			parts = append(parts, contexts[i%len(contexts)])
		}
		if approach := variationApproaches[i%len(variationApproaches)]; approach != "" {
			parts = append(parts, approach)
		}

		prompt := strings.Join(parts, " ")
		if len(prompt) > maxPromptLen {
			prompt = prompt[:maxPromptLen] + "..."
		}
		prompts = append(prompts, prompt)
	}

	return prompts
}

// buildContexts collects contextual prompt fragments from the description,
// industry, and target audience.
func buildContexts(info models.BusinessInfo) []string {
	var contexts []string

	desc := strings.ToLower(strings.TrimSpace(info.Description))
	if desc != "" {
		matched := false
		for _, dc := range descriptionContexts {
			if containsAny(desc, dc.words) {
				contexts = append(contexts, dc.fragment)
				matched = true
				break
			}
		}
		if !matched {
			short := desc
			if len(short) > 50 {
				short = short[:50]
			}
			contexts = append(contexts, "reflecting the essence of "+short)
		}
	}

	industry := strings.ToLower(info.Industry)
	if frag, ok := industryContexts[industry]; ok {
		// Skip when the description already contributed a similar theme.
		if !fragmentOverlaps(contexts, industry) {
			contexts = append(contexts, frag)
		}
	}

	audience := strings.ToLower(strings.TrimSpace(info.TargetAudience))
	if audience != "" {
		for _, ac := range audienceContexts {
			if containsAny(audience, ac.words) {
				contexts = append(contexts, ac.fragment)
				break
			}
		}
	}

	return contexts
}

// containsAny reports whether s contains any of the given words.
func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// fragmentOverlaps reports whether an existing context fragment already
// mentions the industry theme.
func fragmentOverlaps(contexts []string, industry string) bool {
	key := industry
	if i := strings.IndexByte(key, ' '); i > 0 {
		key = key[:i]
	}
	for _, c := range contexts {
		if strings.Contains(c, key) {
			return true
		}
	}
	return false
}
