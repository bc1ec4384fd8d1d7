package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("env = %q, want dev", cfg.Env)
	}
	if cfg.RateLimitPerSec != 5 || cfg.RateLimitBurst != 10 {
		t.Fatalf("rate limit = %v/%d, want 5/10", cfg.RateLimitPerSec, cfg.RateLimitBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "PROD")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT_PER_SEC", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("env = %q, want production", cfg.Env)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, want) {
		t.Fatalf("origins = %v, want %v", cfg.CORSAllowOrigin, want)
	}
	if cfg.RateLimitPerSec != 2.5 || cfg.RateLimitBurst != 3 {
		t.Fatalf("rate limit = %v/%d, want 2.5/3", cfg.RateLimitPerSec, cfg.RateLimitBurst)
	}
}

func TestLoadRejectsInvalidNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SEC", "not-a-number")
	t.Setenv("RATE_LIMIT_BURST", "-4")

	cfg := Load()
	if cfg.RateLimitPerSec != 5 || cfg.RateLimitBurst != 10 {
		t.Fatalf("rate limit = %v/%d, want defaults 5/10", cfg.RateLimitPerSec, cfg.RateLimitBurst)
	}
}
