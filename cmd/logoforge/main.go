// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the LogoForge server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"

	"logoforge/internal/ai"
	"logoforge/internal/analyzer"
	"logoforge/internal/cache"
	"logoforge/internal/config"
	"logoforge/internal/database"
	"logoforge/internal/generator"
	"logoforge/internal/handlers"
	"logoforge/internal/middleware"
	"logoforge/internal/router"
	"logoforge/internal/storage"
	"logoforge/internal/store"
	"logoforge/internal/ws"
)

func main() {
	// Bootstrap text logger so config errors are readable; replaced with
	// the environment-appropriate handler once config is loaded.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Production gets JSON logs at info level; development keeps the
	// debug text handler.
	if !cfg.IsDev() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"provider", cfg.Provider,
	)

	// Connect to PostgreSQL. Generation history and favorites need the
	// database; generation itself does not, so in development the server
	// degrades to a history-less mode when Postgres is unreachable.
	var history *store.GenerationStore
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		if !cfg.IsDev() {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		slog.Warn("database unavailable — history and favorites disabled", "error", err)
	} else {
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		history = store.NewGenerationStore(db)
	}

	// Connect to Valkey (Redis-compatible cache + rate limit counters).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	logoCache := cache.NewLogoCache(valkeyClient)
	limiter := middleware.NewRateLimiter(valkeyClient, cfg.RateLimit, cfg.RateLimitWindow)

	// Connect to S3-compatible object storage (optional — app works without it).
	var archive *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		archive, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — generated images are cache-only")
	}

	// Initialize the AI provider registry. The template strategy needs no
	// provider; openai and vertex register only when their credentials exist.
	registry := ai.NewRegistry(cfg.Provider)
	if cfg.OpenAIKey != "" {
		registry.Register("openai", ai.NewOpenAI(ai.ProviderConfig{
			APIKey:  cfg.OpenAIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		}))
	}
	if cfg.VertexProject != "" && cfg.VertexToken != "" {
		registry.Register("vertex", ai.NewVertex(ai.VertexConfig{
			Project:  cfg.VertexProject,
			Location: cfg.VertexLocation,
			Model:    cfg.VertexModel,
			BaseURL:  cfg.VertexBaseURL,
			Tokens:   oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.VertexToken}),
		}))
	}

	if cfg.Provider != "template" && !registry.HasProvider(cfg.Provider) {
		slog.Error("active provider has no credentials configured", "provider", cfg.Provider)
		os.Exit(1)
	}

	slog.Info("providers initialized",
		"active", registry.ActiveName(),
		"available", registry.Available(),
	)

	// Progress events stream to the browser over WebSocket.
	hub := ws.NewHub()

	gen := generator.New(registry, logoCache, history, archive, hub)
	an := analyzer.New(analyzer.DefaultTables)

	api := handlers.NewAPI(an, gen, logoCache, history, registry)

	// Set up the Chi router with all middleware and routes.
	r := router.New(api, limiter, hub, cfg.CORSOrigins)

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate image generation, which waits on the
	// provider for every variation (typically 10-20s each, up to four).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
