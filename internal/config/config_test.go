package config

import (
	"os"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	original, existed := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
	t.Cleanup(func() {
		if !existed {
			_ = os.Unsetenv(key)
			return
		}
		_ = os.Setenv(key, original)
	})
}

func TestDefaultModelChain(t *testing.T) {
	unsetEnv(t, "GEMINI_MODELS")

	cfg := New()
	expected := []string{
		"gemini-2.0-flash-lite",
		"gemini-2.5-flash-lite",
		"gemini-2.0-flash",
		"gemini-2.5-flash",
	}
	if len(cfg.Models) != len(expected) {
		t.Fatalf("expected %d models, got %d", len(expected), len(cfg.Models))
	}
	for i, model := range expected {
		if cfg.Models[i] != model {
			t.Fatalf("model %d: expected %s, got %s", i, model, cfg.Models[i])
		}
	}
}

func TestModelsOverrideTrimsEntries(t *testing.T) {
	t.Setenv("GEMINI_MODELS", " gemini-2.5-flash , gemini-2.0-flash ,")

	cfg := New()
	if len(cfg.Models) != 2 {
		t.Fatalf("expected 2 models, got %d: %v", len(cfg.Models), cfg.Models)
	}
	if cfg.Models[0] != "gemini-2.5-flash" || cfg.Models[1] != "gemini-2.0-flash" {
		t.Fatalf("unexpected models: %v", cfg.Models)
	}
}

func TestSessionTTLDefaultsToOneDay(t *testing.T) {
	unsetEnv(t, "SESSION_TTL")

	cfg := New()
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected 24h TTL, got %s", cfg.SessionTTL)
	}
}

func TestSessionTTLIgnoresInvalidValue(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg := New()
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected fallback TTL, got %s", cfg.SessionTTL)
	}
}

func TestDatabaseURLOverridesComposedDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/sessions?sslmode=require")

	cfg := New()
	if cfg.DatabaseURL != "postgres://u:p@db:5432/sessions?sslmode=require" {
		t.Fatalf("expected explicit DSN to win, got %s", cfg.DatabaseURL)
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	cfg := New()
	if !cfg.IsProduction() || cfg.IsDevelopment() {
		t.Fatalf("expected production environment, got %s", cfg.Environment)
	}
}
