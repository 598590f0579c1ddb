package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.OperationTimeout != 30*time.Second {
		t.Fatalf("expected default operation timeout 30s, got %v", cfg.OperationTimeout)
	}
	if cfg.MonthlyGraceDays != 0 {
		t.Fatalf("expected default grace days 0, got %d", cfg.MonthlyGraceDays)
	}
	if cfg.CookieName != "session" {
		t.Fatalf("expected default cookie name session, got %q", cfg.CookieName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MONTHLY_GRACE_DAYS", "3")
	t.Setenv("JWT_EXPIRATION", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.HTTPPort)
	}
	if cfg.MonthlyGraceDays != 3 {
		t.Fatalf("expected grace days 3, got %d", cfg.MonthlyGraceDays)
	}
	if cfg.JWTExpiration != time.Hour {
		t.Fatalf("expected jwt expiration 1h, got %v", cfg.JWTExpiration)
	}
}
