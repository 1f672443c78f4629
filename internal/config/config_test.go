package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "BOARD_ROWS", "BOARD_COLS", "SEARCH_DEPTH", "WEB_MAX_DEPTH", "WITH_AI", "ALLOWED_ORIGINS", "MATCH_TOKEN_TTL_MINUTES"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.Port != "8080" || cfg.Rows != 6 || cfg.Cols != 7 || cfg.SearchDepth != 3 || cfg.WebMaxDepth != 4 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !cfg.WithAI {
		t.Fatalf("expected AI to be enabled by default")
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("expected one hour token TTL, got %v", cfg.TokenTTL)
	}
	if AppConfig != cfg {
		t.Fatalf("expected AppConfig to point at the loaded config")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SEARCH_DEPTH", "5")
	t.Setenv("WEB_MAX_DEPTH", "2")
	t.Setenv("WITH_AI", "false")
	t.Setenv("AI_SEED", "17")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("FRONTEND_URL", "https://front.example")

	cfg := LoadConfig()
	if cfg.SearchDepth != 5 || cfg.WebMaxDepth != 2 || cfg.WithAI || cfg.Seed() != 17 {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	want := []string{"https://front.example", "https://a.example", "https://b.example"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.AllowedOrigins)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Fatalf("expected origins %v, got %v", want, cfg.AllowedOrigins)
		}
	}
}

func TestInvalidNumbersFallBackToDefault(t *testing.T) {
	t.Setenv("BOARD_ROWS", "six")
	t.Setenv("AI_DEBUG", "maybe")

	if got := GetEnvAsInt("BOARD_ROWS", 6); got != 6 {
		t.Fatalf("expected default 6, got %d", got)
	}
	if got := GetEnvAsBool("AI_DEBUG", false); got {
		t.Fatalf("expected default false")
	}
}
