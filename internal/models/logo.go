// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the flat request and response records exchanged
// between the browser UI, the HTTP handlers, and the generation pipeline.
// None of these carry lifecycle beyond a single generation request.
package models

import (
	"time"

	"github.com/google/uuid"
)

// StyleType enumerates the supported logo design styles.
type StyleType string

const (
	StyleModern       StyleType = "modern"
	StyleVintage      StyleType = "vintage"
	StyleBold         StyleType = "bold"
	StyleElegant      StyleType = "elegant"
	StylePlayful      StyleType = "playful"
	StyleProfessional StyleType = "professional"
)

// StyleTypes lists every valid style, in display order.
var StyleTypes = []StyleType{
	StyleModern, StyleVintage, StyleBold,
	StyleElegant, StylePlayful, StyleProfessional,
}

// Valid reports whether the style is one of the known types.
func (s StyleType) Valid() bool {
	for _, t := range StyleTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Industries is the fixed list of selectable business industries.
var Industries = []string{
	"technology", "healthcare", "finance", "food", "education",
	"creative", "retail", "real estate", "consulting", "manufacturing",
}

// ValidIndustry reports whether the given industry is in the fixed list.
// The canonical form is lowercase; handlers normalise before calling.
func ValidIndustry(industry string) bool {
	for _, i := range Industries {
		if i == industry {
			return true
		}
	}
	return false
}

// BusinessInfo describes the business a logo is generated for. It exists
// only for the duration of one generation request.
type BusinessInfo struct {
	Name           string `json:"name"`
	Industry       string `json:"industry"`
	Description    string `json:"description,omitempty"`
	TargetAudience string `json:"target_audience,omitempty"`
}

// StyleConfig holds the user's style selection for a generation request.
type StyleConfig struct {
	StyleType      StyleType `json:"style_type"`
	ColorPalette   []string  `json:"color_palette"`
	FontPreference string    `json:"font_preference,omitempty"`
}

// GenerationRequest is the body of POST /api/v1/generate-logos.
type GenerationRequest struct {
	BusinessInfo BusinessInfo `json:"business_info"`
	Style        StyleConfig  `json:"style"`
	Variations   int          `json:"variations"`
	// Model optionally overrides the provider's default image model
	// (e.g. "imagegeneration@005" for Vertex).
	Model string `json:"model,omitempty"`
}

// Logo is one generated logo candidate. Exactly one of ImageURL and
// SVGContent is set, depending on the generation strategy.
type Logo struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	ImageURL        string         `json:"image_url,omitempty"`
	SVGContent      string         `json:"svg_content,omitempty"`
	StyleInfo       map[string]any `json:"style_info"`
	ColorsUsed      []string       `json:"colors_used"`
	GenerationTime  float64        `json:"generation_time"`
	ConfidenceScore float64        `json:"confidence_score"`
	PromptUsed      string         `json:"prompt_used,omitempty"`
}

// GenerationStats summarizes one generation call for the response envelope.
type GenerationStats struct {
	TotalTime       float64 `json:"total_time"`
	LogosGenerated  int     `json:"logos_generated"`
	AIModel         string  `json:"ai_model"`
	Quality         string  `json:"quality"`
	ApproximateCost string  `json:"approximate_cost"`
	RealAIGenerated bool    `json:"real_ai_generated"`
}

// Feedback is a user rating for a generated logo.
type Feedback struct {
	LogoID       string `json:"logo_id"`
	Rating       int    `json:"rating"`
	FeedbackText string `json:"feedback_text,omitempty"`
}

// Generation is one persisted logo generation row.
type Generation struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"business_name"`
	Industry     string    `json:"industry"`
	StyleType    StyleType `json:"style_type"`
	Colors       []string  `json:"colors"`
	ImageRef     string    `json:"image_ref"` // image URL or inline SVG
	Params       []byte    `json:"-"`         // original request, JSON
	Rating       *int      `json:"feedback_rating,omitempty"`
	IsFavorite   bool      `json:"is_favorite"`
	CreatedAt    time.Time `json:"created_at"`
}

// Analysis is the result of the business-analysis heuristic.
type Analysis struct {
	RecommendedColors []string       `json:"recommended_colors"`
	RecommendedStyle  StyleType      `json:"recommended_style"`
	StyleConfidence   map[string]int `json:"style_confidence"`
	AnalysisTime      float64        `json:"analysis_time"`
	BusinessKeywords  []string       `json:"business_keywords"`
}
