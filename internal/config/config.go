package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth (optional; when empty the stats endpoint is open)
	APIKey string

	// Model backend
	AnthropicAPIKey string
	AnthropicModel  string

	// Upload limits
	MaxUploadBytes int64
	MaxPages       int

	// Extraction
	ExtractTimeout time.Duration

	// Classifier thresholds. Empirically tuned values; override only
	// with measurement.
	PureReferenceCutoff   float64
	MinMixedExtractChars  int
	MinPrefixChars        int
	StrongPrefixChars     int
	MinSubstantiveChars   int
	MinIndicatorMatches   int
	LongTextFallbackChars int

	// Extra classifier language pack (YAML); empty to disable
	LanguagePackPath string

	// Result cache
	ResultTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("DOCSIFT_API_KEY"),

		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  envOr("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
		MaxPages:       envInt("MAX_PAGES", 500),

		ExtractTimeout: envDuration("EXTRACT_TIMEOUT", 60*time.Second),

		PureReferenceCutoff:   envFloat("PURE_REFERENCE_CUTOFF", 0.5),
		MinMixedExtractChars:  envInt("MIN_MIXED_EXTRACT_CHARS", 100),
		MinPrefixChars:        envInt("MIN_PREFIX_CHARS", 150),
		StrongPrefixChars:     envInt("STRONG_PREFIX_CHARS", 200),
		MinSubstantiveChars:   envInt("MIN_SUBSTANTIVE_CHARS", 100),
		MinIndicatorMatches:   envInt("MIN_INDICATOR_MATCHES", 2),
		LongTextFallbackChars: envInt("LONG_TEXT_FALLBACK_CHARS", 500),

		LanguagePackPath: os.Getenv("LANGUAGE_PACK_PATH"),

		ResultTTL: envDuration("RESULT_TTL", 1*time.Hour),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 500
	}
	if cfg.ExtractTimeout <= 0 {
		cfg.ExtractTimeout = 60 * time.Second
	}
	if cfg.PureReferenceCutoff <= 0 || cfg.PureReferenceCutoff > 1 {
		cfg.PureReferenceCutoff = 0.5
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.AnthropicAPIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is required")
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

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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
