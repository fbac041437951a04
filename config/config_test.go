package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("REDIS_URI", "")
	t.Setenv("TOKEN_TTL_HOURS", "")

	cfg := Load()
	if cfg.Port != "5001" {
		t.Errorf("expected default port 5001, got %s", cfg.Port)
	}
	if cfg.Store.Driver != "mongo" {
		t.Errorf("expected mongo driver, got %s", cfg.Store.Driver)
	}
	if cfg.RedisURI != "" {
		t.Errorf("expected redis disabled, got %q", cfg.RedisURI)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl, got %v", cfg.Auth.TokenTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("REDIS_URI", "redis://cache:6379")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("ADMIN_USERNAME", "  root ")

	cfg := Load()
	if cfg.Store.Driver != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", cfg.Store.Driver)
	}
	if cfg.RedisURI != "cache:6379" {
		t.Errorf("expected redis:// prefix stripped, got %s", cfg.RedisURI)
	}
	if cfg.Auth.TokenTTL != 2*time.Hour {
		t.Errorf("expected 2h token ttl, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.AdminUsername != "root" {
		t.Errorf("expected trimmed username, got %q", cfg.Auth.AdminUsername)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "soon")
	if got := Load().Auth.TokenTTL; got != 24*time.Hour {
		t.Errorf("expected fallback to 24h, got %v", got)
	}
}
