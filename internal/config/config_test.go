package config

import (
	"errors"
	"testing"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Auth.JWTSecret != "test-secret" {
		t.Fatalf("secret not loaded")
	}
	if cfg.App.Port != "5000" {
		t.Fatalf("expected default port 5000, got %s", cfg.App.Port)
	}
	if cfg.Redis.Addr != "127.0.0.1:6379" {
		t.Fatalf("expected default redis addr, got %s", cfg.Redis.Addr)
	}
	if cfg.Logger.Level != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.Logger.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != "9000" {
		t.Fatalf("expected port override, got %s", cfg.App.Port)
	}
	if cfg.App.RequestTimeout().Seconds() != 5 {
		t.Fatalf("expected 5s timeout, got %v", cfg.App.RequestTimeout())
	}
}
