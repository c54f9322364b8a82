package handlers

import (
	"strings"
	"unicode/utf8"

	"logoforge/internal/models"
	"logoforge/internal/palette"
)

// Validation limits for generation request fields.
const (
	minNameLen        = 2
	maxNameLen        = 50
	maxDescriptionLen = 200
	maxAudienceLen    = 200
	maxColors         = 4
	maxVariations     = 4
	defaultVariations = 2
	maxRating         = 5
)

// validateBusinessInfo normalizes and checks the business fields, returning
// the first error found. The info struct is trimmed in place.
func validateBusinessInfo(info *models.BusinessInfo) string {
	info.Name = strings.TrimSpace(info.Name)
	if info.Name == "" {
		return "Business name is required."
	}
	if utf8.RuneCountInString(info.Name) < minNameLen {
		return "Business name is too short (min 2 characters)."
	}
	if utf8.RuneCountInString(info.Name) > maxNameLen {
		return "Business name is too long (max 50 characters)."
	}

	info.Industry = strings.ToLower(strings.TrimSpace(info.Industry))
	if info.Industry == "" {
		return "Industry is required."
	}
	if !models.ValidIndustry(info.Industry) {
		return "Unknown industry."
	}

	if utf8.RuneCountInString(info.Description) > maxDescriptionLen {
		return "Description is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(info.TargetAudience) > maxAudienceLen {
		return "Target audience is too long (max 200 characters)."
	}
	return ""
}

// validateGeneration normalizes and checks a full generation request,
// returning the first error found. Defaults are applied in place: missing
// variations become 2 and palette colors are canonicalized to lowercase
// "#rrggbb" form.
func validateGeneration(req *models.GenerationRequest) string {
	if msg := validateBusinessInfo(&req.BusinessInfo); msg != "" {
		return msg
	}

	if req.Style.StyleType == "" {
		return "Style type is required."
	}
	if !req.Style.StyleType.Valid() {
		return "Unknown style type."
	}

	if len(req.Style.ColorPalette) > maxColors {
		return "Too many colors (max 4)."
	}
	for i, hex := range req.Style.ColorPalette {
		canonical, err := palette.Parse(hex)
		if err != nil {
			return "Invalid color: " + hex
		}
		req.Style.ColorPalette[i] = canonical
	}

	if req.Variations == 0 {
		req.Variations = defaultVariations
	}
	if req.Variations < 1 || req.Variations > maxVariations {
		return "Variations must be between 1 and 4."
	}
	return ""
}

// validateFeedback checks a feedback submission.
func validateFeedback(fb *models.Feedback) string {
	fb.LogoID = strings.TrimSpace(fb.LogoID)
	if fb.LogoID == "" {
		return "Logo ID is required."
	}
	if fb.Rating < 1 || fb.Rating > maxRating {
		return "Rating must be between 1 and 5."
	}
	return ""
}
