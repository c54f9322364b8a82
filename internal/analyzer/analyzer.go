// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package analyzer implements the deterministic business-analysis heuristic
// that recommends a color palette and logo style before generation. It is a
// pure keyword lookup against static tables — no model, no external call.
package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"logoforge/internal/models"
)

// Tables holds the scoring configuration: industry to palette and style to
// keyword set. Exposed as a struct so alternative tables can be injected in
// tests or future configuration.
type Tables struct {
	IndustryColors map[string][]string
	StyleKeywords  map[models.StyleType][]string
	DefaultColors  []string
}

// DefaultTables is the built-in scoring configuration.
var DefaultTables = Tables{
	IndustryColors: map[string][]string{
		"technology": {"#007acc", "#0066cc", "#4a90e2", "#5cb3cc"},
		"healthcare": {"#00a86b", "#228b22", "#32cd32", "#87ceeb"},
		"finance":    {"#1e3a5f", "#2c5f2d", "#8b4513", "#708090"},
		"food":       {"#ff6347", "#ffa500", "#ffd700", "#32cd32"},
		"education":  {"#4169e1", "#8a2be2", "#dc143c", "#228b22"},
		"creative":   {"#ff1493", "#ff4500", "#ffd700", "#9370db"},
	},
	StyleKeywords: map[models.StyleType][]string{
		models.StyleModern:       {"tech", "digital", "software", "app", "innovation"},
		models.StyleProfessional: {"consulting", "finance", "law", "corporate"},
		models.StylePlayful:      {"kids", "games", "entertainment", "creative"},
		models.StyleElegant:      {"luxury", "premium", "boutique", "fashion"},
		models.StyleBold:         {"sports", "fitness", "energy", "power"},
		models.StyleVintage:      {"craft", "artisan", "traditional", "heritage"},
	},
	DefaultColors: []string{"#3b82f6", "#1e40af", "#10b981"},
}

// maxKeywords caps how many extracted business words are echoed back.
const maxKeywords = 10

var wordRe = regexp.MustCompile(`\w+`)

// Analyzer scores business information against its tables.
type Analyzer struct {
	tables Tables
}

// New creates an Analyzer with the given tables. Pass DefaultTables for the
// standard configuration.
func New(tables Tables) *Analyzer {
	return &Analyzer{tables: tables}
}

// Analyze recommends colors and a style for the business. The recommended
// style is the highest-scoring one; ties and the zero-match case resolve to
// "modern" (or alphabetically-first among equal scorers above modern's).
func (a *Analyzer) Analyze(info models.BusinessInfo) models.Analysis {
	start := time.Now()

	colors, ok := a.tables.IndustryColors[strings.ToLower(info.Industry)]
	if !ok {
		colors = a.tables.DefaultColors
	}

	words := wordRe.FindAllString(strings.ToLower(info.Name), -1)
	words = append(words, wordRe.FindAllString(strings.ToLower(info.Description), -1)...)

	wordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		wordSet[w] = struct{}{}
	}

	scores := make(map[string]int, len(a.tables.StyleKeywords))
	for style, keywords := range a.tables.StyleKeywords {
		n := 0
		for _, kw := range keywords {
			if _, ok := wordSet[kw]; ok {
				n++
			}
		}
		scores[string(style)] = n
	}

	recommended := pickStyle(scores)

	keywords := words
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	return models.Analysis{
		RecommendedColors: colors,
		RecommendedStyle:  recommended,
		StyleConfidence:   scores,
		AnalysisTime:      time.Since(start).Seconds(),
		BusinessKeywords:  keywords,
	}
}

// pickStyle returns the highest-scoring style. Iteration over Go maps is
// randomized, so candidates are sorted to keep the result deterministic.
// A zero top score falls back to "modern".
func pickStyle(scores map[string]int) models.StyleType {
	best := 0
	for _, n := range scores {
		if n > best {
			best = n
		}
	}
	if best == 0 {
		return models.StyleModern
	}

	var top []string
	for style, n := range scores {
		if n == best {
			top = append(top, style)
		}
	}
	sort.Strings(top)
	return models.StyleType(top[0])
}
