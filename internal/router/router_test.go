// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"logoforge/internal/ai"
	"logoforge/internal/analyzer"
	"logoforge/internal/generator"
	"logoforge/internal/handlers"
	"logoforge/internal/router"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	registry := ai.NewRegistry("template")
	gen := generator.New(registry, nil, nil, nil, nil)
	api := handlers.NewAPI(analyzer.New(analyzer.DefaultTables), gen, nil, nil, registry)
	return router.New(api, nil, nil, []string{"http://localhost:3000"})
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "logoforge") {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGenerateRouteWired(t *testing.T) {
	r := newTestRouter(t)

	body := strings.NewReader(`{
		"business_info": {"name": "Acme", "industry": "technology"},
		"style": {"style_type": "modern", "color_palette": ["#3b82f6"]},
		"variations": 1
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-logos", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "svg_content") {
		t.Error("generation response missing logos")
	}
}

func TestDownloadRouteParams(t *testing.T) {
	// Routing must reach the handler; without a cache it responds 503,
	// proving both URL parameters bound.
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/logo/abc/download/png", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/generate-logos", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got == "" {
		t.Error("X-Frame-Options missing")
	}
}

func TestEmbeddedUIServed(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app", nil))
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("/app status = %d, want 301", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/app/ status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "LogoForge") {
		t.Error("embedded UI page missing")
	}
}
