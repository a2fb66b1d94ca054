package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/storybook")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q", cfg.AppEnv)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.StaleJobCutoff != time.Hour {
		t.Errorf("StaleJobCutoff = %v", cfg.StaleJobCutoff)
	}
	if cfg.RateLimitPerMin != 30 {
		t.Errorf("RateLimitPerMin = %d", cfg.RateLimitPerMin)
	}
	if cfg.DBMaxConns != 10 {
		t.Errorf("DBMaxConns = %d", cfg.DBMaxConns)
	}
}

func TestLoadConfigWriteTimeoutCoversGeneration(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/storybook")
	t.Setenv("HTTP_WRITE_TIMEOUT_SECONDS", "")
	t.Setenv("GENERATE_TIMEOUT_SECONDS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HTTPWriteTimeout <= cfg.GenerateTimeout {
		t.Errorf("write timeout %v does not outlive generate timeout %v", cfg.HTTPWriteTimeout, cfg.GenerateTimeout)
	}

	// The coupled default follows a longer generation timeout too.
	t.Setenv("GENERATE_TIMEOUT_SECONDS", "300")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HTTPWriteTimeout != 330*time.Second {
		t.Errorf("HTTPWriteTimeout = %v, want 330s", cfg.HTTPWriteTimeout)
	}

	// An explicit write timeout always wins.
	t.Setenv("HTTP_WRITE_TIMEOUT_SECONDS", "45")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HTTPWriteTimeout != 45*time.Second {
		t.Errorf("HTTPWriteTimeout = %v, want 45s", cfg.HTTPWriteTimeout)
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/storybook")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("GEMINI_TEXT_MODEL", "gemini-1.5-flash")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.RateLimitPerMin != 5 {
		t.Errorf("RateLimitPerMin = %d", cfg.RateLimitPerMin)
	}
	if cfg.GeminiTextModel != "gemini-1.5-flash" {
		t.Errorf("GeminiTextModel = %q", cfg.GeminiTextModel)
	}
}
