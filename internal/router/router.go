// Package router sets up all HTTP routes and middleware chains for the
// LogoForge server. The JSON API lives under /api/v1; the embedded
// browser UI is served at /app.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"logoforge/internal/handlers"
	"logoforge/internal/middleware"
	"logoforge/internal/ws"
	"logoforge/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter and hub may be nil, disabling rate
// limiting and progress streaming respectively.
func New(api *handlers.API, limiter *middleware.RateLimiter, hub *ws.Hub, corsOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check.
	r.Get("/", api.Health)

	// JSON API.
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze-business", api.AnalyzeBusiness)

		// Only generation burns provider credits, so only it is throttled.
		if limiter != nil {
			r.With(limiter.Middleware).Post("/generate-logos", api.GenerateLogos)
		} else {
			r.Post("/generate-logos", api.GenerateLogos)
		}

		r.Get("/logo/{id}/download/{format}", api.DownloadLogo)
		r.Post("/logo/{id}/favorite", api.ToggleFavorite)
		r.Post("/feedback", api.SubmitFeedback)
		r.Get("/user/logos", api.UserLogos)
		r.Get("/statistics", api.Statistics)
	})

	// Generation progress stream.
	if hub != nil {
		r.Get("/ws/generation-progress", hub.ServeHTTP)
	}

	// Embedded browser UI.
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/app", http.RedirectHandler("/app/", http.StatusMovedPermanently))
		r.Handle("/app/*", http.StripPrefix("/app/", http.FileServer(http.FS(staticFS))))
	}

	return r
}
