// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator orchestrates one logo generation request end to end:
// prompt construction, provider calls (or local SVG synthesis), progress
// broadcasting, caching for later download, optional S3 archival, and
// background history persistence.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"logoforge/internal/ai"
	"logoforge/internal/analyzer"
	"logoforge/internal/cache"
	"logoforge/internal/models"
	"logoforge/internal/palette"
	"logoforge/internal/storage"
	"logoforge/internal/store"
	"logoforge/internal/svg"
	"logoforge/internal/ws"
)

// Generator runs logo generation requests. Cache, store, archive and hub
// are all optional; a nil field simply disables that side effect.
type Generator struct {
	registry *ai.Registry
	cache    *cache.LogoCache
	history  *store.GenerationStore
	archive  *storage.Client
	hub      *ws.Hub
}

// New creates a Generator. Only the registry is required.
func New(registry *ai.Registry, lc *cache.LogoCache, history *store.GenerationStore, archive *storage.Client, hub *ws.Hub) *Generator {
	return &Generator{
		registry: registry,
		cache:    lc,
		history:  history,
		archive:  archive,
		hub:      hub,
	}
}

// Result is the outcome of one generation request.
type Result struct {
	Logos []models.Logo          `json:"logos"`
	Stats models.GenerationStats `json:"generation_stats"`
}

// Generate produces the requested logo variations. The request is assumed
// validated. Provider strategies fail the whole request on the first
// provider error; the local template strategy cannot fail once the palette
// parses.
func (g *Generator) Generate(ctx context.Context, req models.GenerationRequest) (*Result, error) {
	start := time.Now()

	colors := req.Style.ColorPalette
	if len(colors) == 0 {
		colors = analyzer.DefaultTables.DefaultColors
	}

	var result *Result
	var err error
	if g.registry.ActiveName() == "template" {
		result, err = g.generateTemplates(ctx, req, colors, start)
	} else {
		result, err = g.generateWithProvider(ctx, req, colors, start)
	}
	if err != nil {
		return nil, err
	}

	g.broadcast("Generation complete", 100)
	g.persist(req, result.Logos)
	return result, nil
}

// generateWithProvider calls the active AI provider once per variation.
func (g *Generator) generateWithProvider(ctx context.Context, req models.GenerationRequest, colors []string, start time.Time) (*Result, error) {
	style := req.Style
	style.ColorPalette = colors
	prompts := ai.BuildPrompts(req.BusinessInfo, style, req.Variations)

	provider, err := g.registry.Active()
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = provider.Model()
	}

	logos := make([]models.Logo, 0, req.Variations)
	for i, prompt := range prompts {
		g.broadcast(
			fmt.Sprintf("Generating variation %d of %d...", i+1, req.Variations),
			i*100/req.Variations,
		)

		variationStart := time.Now()
		img, err := g.registry.GenerateImage(ctx, req.Model, prompt)
		if err != nil {
			return nil, fmt.Errorf("generate variation %d: %w", i+1, err)
		}

		id := uuid.NewString()
		imageURL := "/api/v1/logo/" + id + "/download/png"

		if g.cache != nil {
			if err := g.cache.SetImage(ctx, id, cache.LogoImage{Data: img.Data, ContentType: img.ContentType}); err != nil {
				return nil, fmt.Errorf("store variation %d: %w", i+1, err)
			}
		}

		// Archive to S3 when configured; the public object URL then
		// replaces the local download route.
		if g.archive != nil {
			if url, err := g.archive.UploadLogo(ctx, id, img.ContentType, img.Data); err != nil {
				slog.Warn("logo archive failed", "id", id, "error", err)
			} else {
				imageURL = url
			}
		}

		promptUsed := prompt
		if img.RevisedPrompt != "" {
			promptUsed = img.RevisedPrompt
		}

		logo := models.Logo{
			ID:              id,
			Name:            logoName(req.BusinessInfo.Name, req.Style.StyleType, i),
			ImageURL:        imageURL,
			StyleInfo:       styleInfo(req.Style.StyleType, colors, req.Style.FontPreference),
			ColorsUsed:      colors,
			GenerationTime:  time.Since(variationStart).Seconds(),
			ConfidenceScore: 0.95,
			PromptUsed:      promptUsed,
		}
		if g.cache != nil {
			if err := g.cache.SetLogo(ctx, &logo); err != nil {
				slog.Warn("logo record cache failed", "id", id, "error", err)
			}
		}
		logos = append(logos, logo)
	}

	return &Result{
		Logos: logos,
		Stats: models.GenerationStats{
			TotalTime:       time.Since(start).Seconds(),
			LogosGenerated:  len(logos),
			AIModel:         model,
			Quality:         "high",
			ApproximateCost: fmt.Sprintf("$%.2f", provider.CostPerImage()*float64(len(logos))),
			RealAIGenerated: true,
		},
	}, nil
}

// generateTemplates synthesizes SVG logos locally from the layout templates,
// one hue-rotated palette per variation.
func (g *Generator) generateTemplates(ctx context.Context, req models.GenerationRequest, colors []string, start time.Time) (*Result, error) {
	palettes, err := palette.Variations(colors, req.Variations)
	if err != nil {
		return nil, fmt.Errorf("derive palettes: %w", err)
	}

	logos := make([]models.Logo, 0, req.Variations)
	for i := 0; i < req.Variations; i++ {
		g.broadcast(
			fmt.Sprintf("Generating variation %d of %d...", i+1, req.Variations),
			i*100/req.Variations,
		)

		variationStart := time.Now()
		content := svg.Render(req.BusinessInfo.Name, req.Style.StyleType, palettes[i], i)

		logo := models.Logo{
			ID:              uuid.NewString(),
			Name:            logoName(req.BusinessInfo.Name, req.Style.StyleType, i),
			SVGContent:      content,
			StyleInfo:       styleInfo(req.Style.StyleType, palettes[i], req.Style.FontPreference),
			ColorsUsed:      palettes[i],
			GenerationTime:  time.Since(variationStart).Seconds(),
			ConfidenceScore: 0.85 + 0.05*float64(i),
		}
		if g.cache != nil {
			if err := g.cache.SetLogo(ctx, &logo); err != nil {
				slog.Warn("logo record cache failed", "id", logo.ID, "error", err)
			}
		}
		logos = append(logos, logo)
	}

	return &Result{
		Logos: logos,
		Stats: models.GenerationStats{
			TotalTime:       time.Since(start).Seconds(),
			LogosGenerated:  len(logos),
			AIModel:         "template-svg",
			Quality:         "standard",
			ApproximateCost: "$0.00",
			RealAIGenerated: false,
		},
	}, nil
}

// persist writes one history row per logo in the background so the HTTP
// response is not held up by Postgres.
func (g *Generator) persist(req models.GenerationRequest, logos []models.Logo) {
	if g.history == nil {
		return
	}

	params, err := json.Marshal(req)
	if err != nil {
		params = []byte("{}")
	}

	go func() {
		for _, logo := range logos {
			ref := logo.ImageURL
			if ref == "" {
				ref = logo.SVGContent
			}
			id, err := uuid.Parse(logo.ID)
			if err != nil {
				id = uuid.Nil
			}
			_, err = g.history.Save(&models.Generation{
				ID:           id,
				BusinessName: req.BusinessInfo.Name,
				Industry:     strings.ToLower(req.BusinessInfo.Industry),
				StyleType:    req.Style.StyleType,
				Colors:       logo.ColorsUsed,
				ImageRef:     ref,
				Params:       params,
			})
			if err != nil {
				slog.Warn("history persist failed", "business", req.BusinessInfo.Name, "error", err)
				return
			}
		}
	}()
}

func (g *Generator) broadcast(message string, progress int) {
	if g.hub != nil {
		g.hub.Broadcast(ws.Progress(message, progress))
	}
}

// logoName builds the display name for one variation.
func logoName(business string, style models.StyleType, variation int) string {
	title := strings.ToUpper(string(style[0])) + string(style[1:])
	return fmt.Sprintf("%s - %s Style %d", business, title, variation+1)
}

func styleInfo(style models.StyleType, colors []string, font string) map[string]any {
	info := map[string]any{
		"style":         string(style),
		"color_palette": colors,
	}
	if font != "" {
		info["font"] = font
	}
	return info
}
