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
	AppEnv           string
	Port             string
	DatabaseURL      string
	AllowedOrigins   []string
	GeminiAPIKey     string
	GeminiBaseURL    string
	GeminiTextModel  string
	GeminiImageModel string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	GenerateTimeout  time.Duration
	DBMaxConns       int
	RateLimitPerMin  int
	StaleJobCutoff   time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed.
func LoadConfig() (*Config, error) {
	// Freeform book creation calls the text model inside the request, so the
	// HTTP write timeout must outlive a full generation.
	generateSeconds := getEnvInt("GENERATE_TIMEOUT_SECONDS", 120)

	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:    getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiTextModel:  getEnv("GEMINI_TEXT_MODEL", "gemini-1.5-pro"),
		GeminiImageModel: getEnv("GEMINI_IMAGE_MODEL", "gemini-3-pro-image-preview"),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", generateSeconds+30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		GenerateTimeout:  time.Second * time.Duration(generateSeconds),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 10),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		StaleJobCutoff:   time.Minute * time.Duration(getEnvInt("STALE_JOB_CUTOFF_MINUTES", 60)),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	// GEMINI_API_KEY is validated by the genai client so tools that only
	// touch the database can run without it.

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

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
