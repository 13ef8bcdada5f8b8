// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// devSecret signs tokens when ALLOW_DEV_SECRET is set and JWT_SECRET is not.
// It is public, so it must never be used outside local development.
const devSecret = "dev-only-change-me"

var ErrMissingSecret = errors.New("JWT_SECRET is required")

// Config holds the server settings. Every field can be set from the environment
// or from a .env file in the working directory.
type Config struct {
	Port       int           `env:"PORT"         envDefault:"8080"`
	DBPath     string        `env:"DB_PATH"      envDefault:"./data/commonspace.db"`
	StaticPath string        `env:"STATIC_PATH"  envDefault:"../frontend/static"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL"    envDefault:"168h"`
	LogLevel   string        `env:"LOG_LEVEL"    envDefault:"info"`
	LogFormat  string        `env:"LOG_FORMAT"   envDefault:"text"`
	// CORSOrigins lists allowed browser origins; "*" allows any.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	// AllowDevSecret permits the built-in JWT secret for local development.
	AllowDevSecret bool `env:"ALLOW_DEV_SECRET" envDefault:"false"`
}

// Load reads .env if present (non-fatal if missing) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that have no safe default. With AllowDevSecret and
// no JWTSecret it fills in the development secret.
func (c *Config) Validate() error {
	if c.JWTSecret == "" && c.AllowDevSecret {
		c.JWTSecret = devSecret
	}
	if c.JWTSecret == "" || (c.JWTSecret == devSecret && !c.AllowDevSecret) {
		return ErrMissingSecret
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", c.Port)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
