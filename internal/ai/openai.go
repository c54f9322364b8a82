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
)

// dallECost is the approximate USD price of one standard 1024x1024 image.
const dallECost = 0.04

// openAIProvider implements the Provider interface using the OpenAI
// image generations API (POST /v1/images/generations).
type openAIProvider struct {
	config ProviderConfig
	client *http.Client
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewOpenAI creates a DALL-E image provider. The model defaults to
// "dall-e-3", which generates exactly one image per call.
func NewOpenAI(cfg ProviderConfig) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "dall-e-3"
	}
	return &openAIProvider{
		config: cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *openAIProvider) Name() string          { return "openai" }
func (p *openAIProvider) Model() string         { return p.config.Model }
func (p *openAIProvider) CostPerImage() float64 { return dallECost }

// GenerateImage requests one base64-encoded image from DALL-E and returns
// the decoded bytes along with the revised prompt DALL-E 3 reports.
func (p *openAIProvider) GenerateImage(ctx context.Context, prompt string) (*GeneratedImage, error) {
	body := openAIImageRequest{
		Model:          p.config.Model,
		Prompt:         prompt,
		N:              1,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("openai marshal: %w", err)
	}

	url := p.config.BaseURL + "/images/generations"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("openai request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result openAIImageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("openai unmarshal: %w", err)
	}

	if len(result.Data) == 0 {
		return nil, fmt.Errorf("openai: no images returned")
	}

	imgBytes, err := base64.StdEncoding.DecodeString(result.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("openai decode base64: %w", err)
	}

	return &GeneratedImage{
		Data:          imgBytes,
		ContentType:   "image/png",
		RevisedPrompt: result.Data[0].RevisedPrompt,
	}, nil
}

// --- OpenAI image API types ---

type openAIImageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type openAIImageResponse struct {
	Data []openAIImageData `json:"data"`
}

type openAIImageData struct {
	B64JSON       string `json:"b64_json"`
	RevisedPrompt string `json:"revised_prompt"`
}
