// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the LogoForge API.
// Handlers receive their dependencies through the API struct; optional
// dependencies (history, cache) may be nil and degrade gracefully.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"logoforge/internal/ai"
	"logoforge/internal/analyzer"
	"logoforge/internal/cache"
	"logoforge/internal/generator"
	"logoforge/internal/models"
	"logoforge/internal/store"
)

// historyLimit caps the generation history listing.
const historyLimit = 50

// API groups the JSON API handlers and their dependencies.
type API struct {
	analyzer  *analyzer.Analyzer
	generator *generator.Generator
	cache     *cache.LogoCache
	history   *store.GenerationStore
	registry  *ai.Registry
}

// NewAPI creates the API handler set. cache and history may be nil.
func NewAPI(an *analyzer.Analyzer, gen *generator.Generator, lc *cache.LogoCache, history *store.GenerationStore, registry *ai.Registry) *API {
	return &API{
		analyzer:  an,
		generator: gen,
		cache:     lc,
		history:   history,
		registry:  registry,
	}
}

// Health handles GET / with a liveness summary.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	ok(w, map[string]any{
		"status":    "healthy",
		"service":   "logoforge",
		"version":   "1.0.0",
		"provider":  a.registry.ActiveName(),
		"providers": a.registry.Available(),
	})
}

// AnalyzeBusiness handles POST /api/v1/analyze-business. Results are
// cached per normalized business name.
func (a *API) AnalyzeBusiness(w http.ResponseWriter, r *http.Request) {
	var info models.BusinessInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if msg := validateBusinessInfo(&info); msg != "" {
		fail(w, http.StatusBadRequest, msg)
		return
	}

	if a.cache != nil {
		if cached, hit := a.cache.GetAnalysis(r.Context(), info.Name); hit {
			ok(w, cached)
			return
		}
	}

	analysis := a.analyzer.Analyze(info)

	if a.cache != nil {
		a.cache.SetAnalysis(r.Context(), info.Name, &analysis)
	}
	ok(w, analysis)
}

// GenerateLogos handles POST /api/v1/generate-logos.
func (a *API) GenerateLogos(w http.ResponseWriter, r *http.Request) {
	var req models.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if msg := validateGeneration(&req); msg != "" {
		fail(w, http.StatusBadRequest, msg)
		return
	}

	result, err := a.generator.Generate(r.Context(), req)
	if err != nil {
		slog.Error("logo generation failed",
			"business", req.BusinessInfo.Name,
			"provider", a.registry.ActiveName(),
			"error", err,
		)
		fail(w, http.StatusInternalServerError, "Logo generation failed: "+err.Error())
		return
	}

	ok(w, result)
}

// SubmitFeedback handles POST /api/v1/feedback. Feedback is stored in the
// cache and, when the logo was persisted, mirrored onto the history row.
func (a *API) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var fb models.Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if msg := validateFeedback(&fb); msg != "" {
		fail(w, http.StatusBadRequest, msg)
		return
	}

	if a.cache != nil {
		if err := a.cache.SetFeedback(r.Context(), &fb); err != nil {
			slog.Warn("feedback cache failed", "logo_id", fb.LogoID, "error", err)
		}
	}

	if a.history != nil {
		if id, err := uuid.Parse(fb.LogoID); err == nil {
			if err := a.history.SetRating(id, fb.Rating); err != nil {
				slog.Warn("feedback history update failed", "logo_id", fb.LogoID, "error", err)
			}
		}
	}

	ok(w, map[string]any{
		"message": "Feedback received. Thank you!",
		"logo_id": fb.LogoID,
	})
}

// favoriteRequest is the body of the favorite toggle endpoint.
type favoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// ToggleFavorite handles POST /api/v1/logo/{id}/favorite.
func (a *API) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	if a.history == nil {
		fail(w, http.StatusServiceUnavailable, "Favorites are unavailable without the history database.")
		return
	}

	id, err := uuid.Parse(pathParam(r, "id"))
	if err != nil {
		fail(w, http.StatusBadRequest, "Invalid logo ID.")
		return
	}

	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	if err := a.history.SetFavorite(id, req.Favorite); err != nil {
		slog.Error("favorite update failed", "logo_id", id, "error", err)
		fail(w, http.StatusInternalServerError, "Could not update favorite.")
		return
	}

	ok(w, map[string]any{
		"logo_id":     id.String(),
		"is_favorite": req.Favorite,
	})
}

// UserLogos handles GET /api/v1/user/logos with the recent generation history.
func (a *API) UserLogos(w http.ResponseWriter, r *http.Request) {
	if a.history == nil {
		ok(w, map[string]any{"logos": []models.Generation{}})
		return
	}

	items, err := a.history.ListRecent(historyLimit)
	if err != nil {
		slog.Error("history listing failed", "error", err)
		fail(w, http.StatusInternalServerError, "Could not load logo history.")
		return
	}
	if items == nil {
		items = []models.Generation{}
	}
	ok(w, map[string]any{"logos": items})
}

// Statistics handles GET /api/v1/statistics.
func (a *API) Statistics(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"total_logos_generated": 0,
		"average_rating":        0.0,
		"favorite_count":        0,
		"most_popular_style":    "",
		"active_provider":       a.registry.ActiveName(),
		"available_providers":   a.registry.Available(),
	}

	if a.history != nil {
		st, err := a.history.Stats()
		if err != nil {
			slog.Error("statistics query failed", "error", err)
			fail(w, http.StatusInternalServerError, "Could not load statistics.")
			return
		}
		data["total_logos_generated"] = st.TotalGenerations
		data["average_rating"] = st.AverageRating
		data["favorite_count"] = st.FavoriteCount
		data["most_popular_style"] = st.TopStyle
	}

	ok(w, data)
}
