package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"medsite/internal/domain/language"
)

type Config struct {
	ListenAddr     string
	APIBaseURL     string
	DatabaseURL    string
	DefaultLocale  string
	RequestTimeout time.Duration
	LogLevel       slog.Level
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any variable lookup, os.LookupEnv in
// production.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		ListenAddr:    get("LISTEN_ADDR", ":8080"),
		APIBaseURL:    get("API_BASE_URL", ""),
		DatabaseURL:   get("DATABASE_URL", ""),
		DefaultLocale: get("DEFAULT_LOCALE", string(language.RU)),
	}

	timeout, err := time.ParseDuration(get("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("config: REQUEST_TIMEOUT invalid: %w", err)
	}
	cfg.RequestTimeout = timeout

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("config: LOG_LEVEL invalid: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies the rules on the loaded configuration.
func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config: API_BASE_URL is required")
	}
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("config: API_BASE_URL invalid (%q): %w", c.APIBaseURL, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("config: API_BASE_URL invalid (%q): http(s) scheme and host required", c.APIBaseURL)
	}

	if !language.Valid(c.DefaultLocale) {
		return fmt.Errorf("config: DEFAULT_LOCALE must be one of %v, got %q", language.Supported(), c.DefaultLocale)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: REQUEST_TIMEOUT must be positive")
	}

	// DATABASE_URL is optional: without it the service runs without snapshots.
	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): scheme or host missing", c.DatabaseURL)
		}
	}

	return nil
}
