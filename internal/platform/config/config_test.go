package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "API_TITLE", "DOCS_PATH", "MAX_BODY_BYTES", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Addr() != ":8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Title != "Greeting API" {
		t.Fatalf("unexpected title: %q", cfg.Title)
	}
	if cfg.DocsPath != "/api-docs" {
		t.Fatalf("unexpected docs path: %q", cfg.DocsPath)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("unexpected max body bytes: %d", cfg.MaxBodyBytes)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("API_TITLE", "Hello Service")
	t.Setenv("DOCS_PATH", "/docs")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "3000" || cfg.Title != "Hello Service" || cfg.DocsPath != "/docs" || cfg.MaxBodyBytes != 2048 ||
		cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "PORT", "http"},
		{"port zero", "PORT", "0"},
		{"port too large", "PORT", "70000"},
		{"relative docs path", "DOCS_PATH", "docs"},
		{"negative body limit", "MAX_BODY_BYTES", "-1"},
		{"non-numeric body limit", "MAX_BODY_BYTES", "1MB"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			if err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Fatalf("expected error to name %s, got %v", tt.key, err)
			}
		})
	}
}

func TestLoadReadsDotEnvWithoutOverriding(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("API_TITLE")
	t.Cleanup(func() { os.Unsetenv("API_TITLE") })
	t.Setenv("PORT", "9090")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=7070\nAPI_TITLE=From Dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected environment PORT to win, got %q", cfg.Port)
	}
	if cfg.Title != "From Dotenv" {
		t.Fatalf("expected title from .env, got %q", cfg.Title)
	}
}

func TestLoadIgnoresMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}
