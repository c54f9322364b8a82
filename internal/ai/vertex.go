// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// vertexCosts maps Imagen model identifiers to the approximate USD cost
// per generated image.
var vertexCosts = map[string]float64{
	"imagegeneration@006": 0.03,
	"imagegeneration@005": 0.025,
}

// VertexConfig holds Google Cloud project settings for the Imagen provider.
type VertexConfig struct {
	Project  string
	Location string
	Model    string
	// BaseURL overrides the regional aiplatform endpoint, used in tests.
	BaseURL string
	// Tokens supplies OAuth2 access tokens. Use google.DefaultTokenSource
	// in production or oauth2.StaticTokenSource in tests.
	Tokens oauth2.TokenSource
}

// vertexProvider implements the Provider interface using the Vertex AI
// Imagen predict API.
type vertexProvider struct {
	config VertexConfig
	client *http.Client
}

// NewVertex creates a Vertex AI Imagen provider. Location defaults to
// us-central1 and the model to imagegeneration@006.
func NewVertex(cfg VertexConfig) Provider {
	if cfg.Location == "" {
		cfg.Location = "us-central1"
	}
	if cfg.Model == "" {
		cfg.Model = "imagegeneration@006"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("https://%s-aiplatform.googleapis.com", cfg.Location)
	}
	return &vertexProvider{
		config: cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *vertexProvider) Name() string  { return "vertex" }
func (p *vertexProvider) Model() string { return p.config.Model }

func (p *vertexProvider) CostPerImage() float64 {
	if c, ok := vertexCosts[p.config.Model]; ok {
		return c
	}
	return vertexCosts["imagegeneration@006"]
}

// GenerateImage generates one image with the provider's default model.
func (p *vertexProvider) GenerateImage(ctx context.Context, prompt string) (*GeneratedImage, error) {
	return p.GenerateImageWithModel(ctx, p.config.Model, prompt)
}

// GenerateImageWithModel generates one image with a specific Imagen model.
// Unknown models are rejected before any network call.
func (p *vertexProvider) GenerateImageWithModel(ctx context.Context, model, prompt string) (*GeneratedImage, error) {
	if _, ok := vertexCosts[model]; !ok {
		return nil, fmt.Errorf("vertex: unsupported model %q", model)
	}

	body := vertexRequest{
		Instances: []vertexInstance{{Prompt: prompt}},
		Parameters: vertexParameters{
			SampleCount:       1,
			AspectRatio:       "1:1",
			SafetyFilterLevel: "block_some",
			PersonGeneration:  "dont_allow",
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("vertex marshal: %w", err)
	}

	url := fmt.Sprintf("%s/v1/projects/%s/locations/%s/publishers/google/models/%s:predict",
		p.config.BaseURL, p.config.Project, p.config.Location, model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("vertex request: %w", err)
	}

	token, err := p.config.Tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("vertex token: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	token.SetAuthHeader(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vertex http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("vertex read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vertex API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result vertexResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("vertex unmarshal: %w", err)
	}

	if len(result.Predictions) == 0 {
		return nil, fmt.Errorf("vertex: no predictions returned")
	}

	pred := result.Predictions[0]
	if pred.BytesBase64Encoded == "" {
		return nil, fmt.Errorf("vertex: no image data in prediction")
	}

	imgBytes, err := base64.StdEncoding.DecodeString(pred.BytesBase64Encoded)
	if err != nil {
		return nil, fmt.Errorf("vertex decode base64: %w", err)
	}

	contentType := pred.MimeType
	if contentType == "" {
		contentType = "image/png"
	}

	return &GeneratedImage{Data: imgBytes, ContentType: contentType}, nil
}

// --- Vertex AI Imagen predict types ---

type vertexInstance struct {
	Prompt string `json:"prompt"`
}

type vertexParameters struct {
	SampleCount       int    `json:"sampleCount"`
	AspectRatio       string `json:"aspectRatio"`
	SafetyFilterLevel string `json:"safetyFilterLevel"`
	PersonGeneration  string `json:"personGeneration"`
}

type vertexRequest struct {
	Instances  []vertexInstance `json:"instances"`
	Parameters vertexParameters `json:"parameters"`
}

type vertexPrediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MimeType           string `json:"mimeType"`
}

type vertexResponse struct {
	Predictions []vertexPrediction `json:"predictions"`
}
