package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every setting so the defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DB_PATH", "STATIC_PATH", "JWT_SECRET", "TOKEN_TTL", "LOG_LEVEL", "LOG_FORMAT", "CORS_ORIGINS", "ALLOW_DEV_SECRET"} {
		t.Setenv(key, "")
	}
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "./data/commonspace.db", cfg.DBPath)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.AllowDevSecret)
}

func TestParse_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/flat.db")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/flat.db", cfg.DBPath)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"PORT": "70000"}},
		{"unparsable port", map[string]string{"PORT": "eighty"}},
		{"bad ttl", map[string]string{"TOKEN_TTL": "-1h"}},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("JWT_SECRET", "s3cret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Parse()
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrMissingSecret)
		})
	}
}

func TestParse_MissingSecret(t *testing.T) {
	clearEnv(t)

	_, err := Parse()
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestParse_DevSecret(t *testing.T) {
	t.Run("refused without opt-in", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_SECRET", devSecret)

		_, err := Parse()
		assert.ErrorIs(t, err, ErrMissingSecret)
	})

	t.Run("filled in with opt-in", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ALLOW_DEV_SECRET", "true")

		cfg, err := Parse()
		require.NoError(t, err)
		assert.Equal(t, devSecret, cfg.JWTSecret)
	})
}
