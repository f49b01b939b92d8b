package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected postgres driver, got %q", cfg.Database.Driver)
	}
	if cfg.Dashboard.SnapshotLimit != 100 {
		t.Errorf("expected snapshot limit 100, got %d", cfg.Dashboard.SnapshotLimit)
	}
	if cfg.Dashboard.RevenueWindowDays != 7 {
		t.Errorf("expected revenue window 7, got %d", cfg.Dashboard.RevenueWindowDays)
	}
	if cfg.Digest.Enabled {
		t.Errorf("expected digest disabled by default")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DASHBOARD_SNAPSHOT_LIMIT", "50")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("DIGEST_ENABLED", "true")
	t.Setenv("AUTH_ENABLED_PROVIDERS", " Google, github ,,")
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := Load()

	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected sqlite driver, got %q", cfg.Database.Driver)
	}
	if cfg.Dashboard.SnapshotLimit != 50 {
		t.Errorf("expected 50, got %d", cfg.Dashboard.SnapshotLimit)
	}
	if cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("expected 30s, got %s", cfg.RateLimit.Window)
	}
	if !cfg.Digest.Enabled {
		t.Errorf("expected digest enabled")
	}
	if len(cfg.Auth.EnabledProviders) != 2 || cfg.Auth.EnabledProviders[0] != "google" || cfg.Auth.EnabledProviders[1] != "github" {
		t.Errorf("unexpected providers: %v", cfg.Auth.EnabledProviders)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected fallback port 8080, got %d", cfg.Server.Port)
	}
}

func TestGetEnvAsList_Empty(t *testing.T) {
	t.Setenv("AUTH_ENABLED_PROVIDERS", "")

	if got := Load().Auth.EnabledProviders; len(got) != 0 {
		t.Errorf("expected no providers, got %v", got)
	}
}
