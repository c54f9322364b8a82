// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// CORS allow-list for the browser UI.
	CORSOrigins []string

	// Rate limiting for the generation endpoint.
	RateLimit       int
	RateLimitWindow time.Duration

	// Provider selects the generation strategy: "openai" (DALL-E 3),
	// "vertex" (Imagen), or "template" (local SVG).
	Provider string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	VertexProject  string
	VertexLocation string
	VertexModel    string
	VertexToken    string
	VertexBaseURL  string

	// S3-compatible object storage for generated images (optional).
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "logoforge"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "logoforge"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		Provider: envOrDefault("LOGO_PROVIDER", "template"),

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOrDefault("OPENAI_IMAGE_MODEL", "dall-e-3"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		VertexProject:  os.Getenv("GOOGLE_CLOUD_PROJECT"),
		VertexLocation: envOrDefault("VERTEX_LOCATION", "us-central1"),
		VertexModel:    envOrDefault("VERTEX_IMAGE_MODEL", "imagegeneration@006"),
		VertexToken:    os.Getenv("VERTEX_ACCESS_TOKEN"),
		VertexBaseURL:  os.Getenv("VERTEX_BASE_URL"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "logoforge-public"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	// Comma-separated origin allow-list for the browser UI.
	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	limit, err := strconv.Atoi(envOrDefault("RATE_LIMIT", "10"))
	if err != nil || limit < 1 {
		return nil, fmt.Errorf("RATE_LIMIT must be a positive integer")
	}
	cfg.RateLimit = limit

	window, err := time.ParseDuration(envOrDefault("RATE_LIMIT_WINDOW", "1h"))
	if err != nil || window <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be a positive duration")
	}
	cfg.RateLimitWindow = window

	switch cfg.Provider {
	case "openai", "vertex", "template":
	default:
		return nil, fmt.Errorf("LOGO_PROVIDER must be openai, vertex, or template (got %q)", cfg.Provider)
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
