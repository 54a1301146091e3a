package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv                string
	Port                  string
	GeminiAPIKey          string
	GeminiTextModel       string
	GeminiImageModel      string
	GeminiMultimodalModel string
	TranslateTarget       string
	AllowedOrigins        []string
	HTTPReadTimeout       time.Duration
	HTTPWriteTimeout      time.Duration
	HTTPIdleTimeout       time.Duration
	RateLimitPerMin       int
	PanelTTL              time.Duration
	MaxUploadBytes        int64
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. GEMINI_API_KEY is required outside development; in
// development the SDK's own env lookup may still supply one.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		Port:                  getEnv("PORT", "8080"),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		GeminiTextModel:       getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		GeminiImageModel:      getEnv("GEMINI_IMAGE_MODEL", "imagen-3.0-generate-002"),
		GeminiMultimodalModel: getEnv("GEMINI_MULTIMODAL_MODEL", "gemini-2.5-flash-image"),
		TranslateTarget:       getEnv("TRANSLATE_TARGET", "en"),
		AllowedOrigins:        splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		HTTPReadTimeout:       time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30)),
		HTTPWriteTimeout:      time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:       time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:       getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		PanelTTL:              time.Minute * time.Duration(getEnvInt("PANEL_TTL_MINUTES", 60)),
		MaxUploadBytes:        int64(getEnvInt("MAX_UPLOAD_MB", 24)) << 20,
	}

	if cfg.GeminiAPIKey == "" && cfg.AppEnv != "development" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
