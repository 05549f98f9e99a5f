package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Recognizer backends.
const (
	BackendProse  = "prose"
	BackendClaude = "claude"
)

type Config struct {
	Port string

	// Entity recognition
	NERBackend           string
	NERModelDir          string
	NERChunkSize         int
	RecognizeConcurrency int

	// Claude backend
	AnthropicAPIKey string
	AnthropicModel  string

	// Fetching
	FetchUserAgent    string
	FetchTimeout      time.Duration
	FetchMaxRedirects int
	MaxDocumentBytes  int64

	// CORS
	CORSAllowedOrigins []string

	// PDF
	PDFFallbackPdftotext bool

	// Recognizer latency window
	StatsWindow time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8080"),

		NERBackend:           strings.ToLower(envOr("NER_BACKEND", BackendProse)),
		NERModelDir:          os.Getenv("NER_MODEL_DIR"),
		NERChunkSize:         envInt("NER_CHUNK_SIZE", 1500),
		RecognizeConcurrency: envInt("RECOGNIZE_CONCURRENCY", 4),

		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  envOr("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),

		FetchUserAgent:    envOr("FETCH_USER_AGENT", "donorscan/1.0"),
		FetchTimeout:      envDuration("FETCH_TIMEOUT", 0),
		FetchMaxRedirects: envInt("FETCH_MAX_REDIRECTS", 5),
		MaxDocumentBytes:  envInt64("MAX_DOCUMENT_BYTES", 52428800), // 50MB

		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),
	}

	if cfg.NERChunkSize <= 0 {
		cfg.NERChunkSize = 1500
	}
	if cfg.RecognizeConcurrency <= 0 {
		cfg.RecognizeConcurrency = 4
	}
	if cfg.FetchTimeout < 0 {
		cfg.FetchTimeout = 0
	}
	if cfg.FetchMaxRedirects <= 0 {
		cfg.FetchMaxRedirects = 5
	}
	if cfg.MaxDocumentBytes <= 0 {
		cfg.MaxDocumentBytes = 52428800
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.NERBackend {
	case BackendProse:
	case BackendClaude:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the %s backend", BackendClaude)
		}
	default:
		return fmt.Errorf("unknown NER_BACKEND %q", c.NERBackend)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// envList splits a comma-separated value, dropping blank entries.
func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
