// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// logo.go provides the Valkey-backed stores for business analyses,
// generated logo records with their image bytes, and feedback. All
// entries carry a TTL so the cache is self-cleaning.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"logoforge/internal/models"
)

const (
	analysisKeyPrefix = "analysis:"
	logoKeyPrefix     = "logo:"
	imageKeyPrefix    = "logoimg:"
	feedbackKeyPrefix = "feedback:"

	// DefaultAnalysisTTL is how long a business analysis stays cached.
	DefaultAnalysisTTL = 1 * time.Hour

	// DefaultLogoTTL is how long a generated logo and its image bytes
	// remain downloadable.
	DefaultLogoTTL = 24 * time.Hour

	// DefaultFeedbackTTL is how long submitted feedback is retained.
	DefaultFeedbackTTL = 24 * time.Hour
)

// LogoImage holds the stored image payload for a generated logo.
type LogoImage struct {
	Data        []byte
	ContentType string
}

// LogoCache manages the short-lived logo generation data in Valkey.
type LogoCache struct {
	client      *redis.Client
	analysisTTL time.Duration
	logoTTL     time.Duration
	feedbackTTL time.Duration
}

// NewLogoCache creates a logo cache backed by the given Valkey client.
// Zero TTLs fall back to the defaults.
func NewLogoCache(client *redis.Client) *LogoCache {
	return &LogoCache{
		client:      client,
		analysisTTL: DefaultAnalysisTTL,
		logoTTL:     DefaultLogoTTL,
		feedbackTTL: DefaultFeedbackTTL,
	}
}

// AnalysisKey returns the cache key for a business name. Names are
// normalized so "Acme" and "acme " hit the same entry.
func AnalysisKey(businessName string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(businessName))))
	return analysisKeyPrefix + hex.EncodeToString(sum[:])
}

// GetAnalysis retrieves a cached analysis for a business name.
// Returns false on miss.
func (lc *LogoCache) GetAnalysis(ctx context.Context, businessName string) (*models.Analysis, bool) {
	val, err := lc.client.Get(ctx, AnalysisKey(businessName)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("analysis cache get error", "error", err)
		return nil, false
	}

	var a models.Analysis
	if err := json.Unmarshal(val, &a); err != nil {
		slog.Warn("analysis cache decode error", "error", err)
		return nil, false
	}
	slog.Debug("analysis cache hit", "business", businessName)
	return &a, true
}

// SetAnalysis caches an analysis result for a business name.
func (lc *LogoCache) SetAnalysis(ctx context.Context, businessName string, a *models.Analysis) {
	data, err := json.Marshal(a)
	if err != nil {
		slog.Warn("analysis cache encode error", "error", err)
		return
	}
	if err := lc.client.Set(ctx, AnalysisKey(businessName), data, lc.analysisTTL).Err(); err != nil {
		slog.Warn("analysis cache set error", "error", err)
	}
}

// SetLogo stores a generated logo record so it can be downloaded later.
func (lc *LogoCache) SetLogo(ctx context.Context, logo *models.Logo) error {
	data, err := json.Marshal(logo)
	if err != nil {
		return err
	}
	return lc.client.Set(ctx, logoKeyPrefix+logo.ID, data, lc.logoTTL).Err()
}

// GetLogo retrieves a generated logo record by ID. Returns false when the
// logo is unknown or expired.
func (lc *LogoCache) GetLogo(ctx context.Context, id string) (*models.Logo, bool) {
	val, err := lc.client.Get(ctx, logoKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("logo cache get error", "id", id, "error", err)
		return nil, false
	}

	var logo models.Logo
	if err := json.Unmarshal(val, &logo); err != nil {
		slog.Warn("logo cache decode error", "id", id, "error", err)
		return nil, false
	}
	return &logo, true
}

// SetImage stores the raw image bytes for a generated logo.
func (lc *LogoCache) SetImage(ctx context.Context, id string, img LogoImage) error {
	// Two keys sharing one TTL: the content type rides in a sibling key.
	pipe := lc.client.Pipeline()
	pipe.Set(ctx, imageKeyPrefix+id, img.Data, lc.logoTTL)
	pipe.Set(ctx, imageKeyPrefix+id+":ct", img.ContentType, lc.logoTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// GetImage retrieves the stored image bytes for a logo ID.
func (lc *LogoCache) GetImage(ctx context.Context, id string) (*LogoImage, bool) {
	data, err := lc.client.Get(ctx, imageKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("logo image get error", "id", id, "error", err)
		return nil, false
	}

	ct, err := lc.client.Get(ctx, imageKeyPrefix+id+":ct").Result()
	if err != nil {
		ct = "image/png"
	}
	return &LogoImage{Data: data, ContentType: ct}, true
}

// SetFeedback records user feedback for a logo.
func (lc *LogoCache) SetFeedback(ctx context.Context, fb *models.Feedback) error {
	data, err := json.Marshal(fb)
	if err != nil {
		return err
	}
	return lc.client.Set(ctx, feedbackKeyPrefix+fb.LogoID, data, lc.feedbackTTL).Err()
}

// GetFeedback retrieves recorded feedback for a logo ID.
func (lc *LogoCache) GetFeedback(ctx context.Context, logoID string) (*models.Feedback, bool) {
	val, err := lc.client.Get(ctx, feedbackKeyPrefix+logoID).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("feedback get error", "id", logoID, "error", err)
		return nil, false
	}

	var fb models.Feedback
	if err := json.Unmarshal(val, &fb); err != nil {
		slog.Warn("feedback decode error", "id", logoID, "error", err)
		return nil, false
	}
	return &fb, true
}
