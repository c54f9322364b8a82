// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a unified interface for the external image-generation
// providers (OpenAI DALL-E, Google Vertex AI Imagen). Each provider handles
// its own HTTP communication and response parsing; the Registry selects the
// active one by name.
package ai

import (
	"context"
	"fmt"
	"sync"
)

// GeneratedImage is one image returned by a provider call.
type GeneratedImage struct {
	Data        []byte
	ContentType string
	// RevisedPrompt carries the provider's rewritten prompt when reported
	// (DALL-E 3 rewrites every prompt); empty otherwise.
	RevisedPrompt string
}

// Provider defines the interface that all image providers must implement.
type Provider interface {
	// GenerateImage creates one image from a text prompt.
	GenerateImage(ctx context.Context, prompt string) (*GeneratedImage, error)

	// Name returns the provider identifier (e.g., "openai", "vertex").
	Name() string

	// Model returns the identifier of the image model in use.
	Model() string

	// CostPerImage returns the approximate USD cost of one generated image.
	CostPerImage() float64
}

// ModelSelector is an optional interface for providers that support
// per-request model overrides (e.g., Vertex imagegeneration@005 vs @006).
type ModelSelector interface {
	GenerateImageWithModel(ctx context.Context, model, prompt string) (*GeneratedImage, error)
}

// Registry manages available providers and selects the active one.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
}

// NewRegistry creates a registry with the given active provider name.
// Providers are added via Register; those without credentials are simply
// never registered.
func NewRegistry(active string) *Registry {
	return &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}
}

// Register adds or replaces a provider in the registry. This also allows
// injecting mock providers in tests.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// Active returns the currently active provider.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("ai: no provider configured for %q", r.active)
	}
	return p, nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// SetActive switches the active provider at runtime. Returns an error if
// the named provider is not registered.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available (no credentials?)", name)
	}
	r.active = name
	return nil
}

// Available returns the names of all registered providers.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// HasProvider checks whether a named provider is registered.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}

// GenerateImage calls the active provider. When model is non-empty and the
// provider supports per-request model selection, the override is honored;
// otherwise the provider's default model is used.
func (r *Registry) GenerateImage(ctx context.Context, model, prompt string) (*GeneratedImage, error) {
	p, err := r.Active()
	if err != nil {
		return nil, err
	}
	if model != "" && model != p.Model() {
		if ms, ok := p.(ModelSelector); ok {
			return ms.GenerateImageWithModel(ctx, model, prompt)
		}
	}
	return p.GenerateImage(ctx, prompt)
}
