package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CFG_INT", "12")
	if got := getEnvInt("CFG_INT", 4); got != 12 {
		t.Fatalf("getEnvInt returned %d, want 12", got)
	}

	// Non-numeric and non-positive values fall back to the default
	t.Setenv("CFG_INT", "nope")
	if got := getEnvInt("CFG_INT", 4); got != 4 {
		t.Fatalf("getEnvInt returned %d, want fallback 4", got)
	}
	t.Setenv("CFG_INT", "-2")
	if got := getEnvInt("CFG_INT", 4); got != 4 {
		t.Fatalf("getEnvInt returned %d, want fallback 4", got)
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_ADVISORY_MODEL", "")
	t.Setenv("ADVISORY_TIMEOUT_SECONDS", "")
	t.Setenv("DISPATCH_STREAM", "")
	t.Setenv("MONITOR_WORKERS", "")
	t.Setenv("MONITOR_POLL_SECONDS", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.RedisURL == "" || cfg.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.AdvisoryTimeoutSeconds != 8 || cfg.MonitorWorkers != 4 || cfg.MonitorPollSeconds != 60 {
		t.Fatalf("numeric defaults not applied: %+v", cfg)
	}
	if cfg.DispatchStream != "adherence:interventions" {
		t.Fatalf("dispatch stream default not applied: %+v", cfg)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example:6379/1")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_ADVISORY_MODEL", "model")
	t.Setenv("ADVISORY_TIMEOUT_SECONDS", "3")
	t.Setenv("DISPATCH_STREAM", "custom:stream")
	t.Setenv("MONITOR_WORKERS", "8")
	t.Setenv("MONITOR_POLL_SECONDS", "30")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.OpenAIAdvisoryModel != "model" || cfg.AdvisoryTimeoutSeconds != 3 {
		t.Fatalf("openai env overrides missing: %+v", cfg)
	}
	if cfg.RedisURL != "redis://example:6379/1" || cfg.DispatchStream != "custom:stream" {
		t.Fatalf("redis env overrides missing: %+v", cfg)
	}
	if cfg.MonitorWorkers != 8 || cfg.MonitorPollSeconds != 30 {
		t.Fatalf("worker env overrides missing: %+v", cfg)
	}
}
