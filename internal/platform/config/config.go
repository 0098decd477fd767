// Package config loads server settings from the environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	defaultPort         = "8080"
	defaultTitle        = "Greeting API"
	defaultDocsPath     = "/api-docs"
	defaultMaxBodyBytes = 1 << 20
	defaultLogLevel     = "info"
)

// Config holds the settings read at startup.
type Config struct {
	Port         string
	Title        string
	DocsPath     string
	MaxBodyBytes int64
	LogLevel     string
}

// Addr returns the listen address for http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads .env files (if present) and then the environment. Variables already set in the
// environment win over .env values. A missing .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return Config{}, err
	}
	return FromEnv()
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv builds a Config from the current environment, applying defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:         envOr("PORT", defaultPort),
		Title:        envOr("API_TITLE", defaultTitle),
		DocsPath:     envOr("DOCS_PATH", defaultDocsPath),
		MaxBodyBytes: defaultMaxBodyBytes,
		LogLevel:     strings.ToLower(envOr("LOG_LEVEL", defaultLogLevel)),
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q: must be a number between 1 and 65535", cfg.Port)
	}
	if !strings.HasPrefix(cfg.DocsPath, "/") {
		return Config{}, fmt.Errorf("invalid DOCS_PATH %q: must start with /", cfg.DocsPath)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	if raw := strings.TrimSpace(os.Getenv("MAX_BODY_BYTES")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid MAX_BODY_BYTES %q: must be a positive integer", raw)
		}
		cfg.MaxBodyBytes = n
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
