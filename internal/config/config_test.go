package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

const testToml = `
[development]
port = 9090
log_level = "debug"
db_user = "dev"
db_password = "dev-pass"
jwt_secret = "dev-secret-dev-secret-dev-secret-dev"
token_duration = "2h"

[production]
port = 80
db_password = "prod-pass"
log_format_json = true
`

func writeToml(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testToml), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "LOGS_PATH", "LOG_FORMAT_JSON",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
		"JWT_SECRET", "JWT_ISSUER", "TOKEN_DURATION",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_TomlSectionThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeToml(t)

	t.Run("Development section", func(t *testing.T) {
		cfg, err := Load(path, "development")
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "dev", cfg.DBUser)
		assert.Equal(t, 2*time.Hour, cfg.TokenDuration)
		assert.Equal(t, "localhost", cfg.DBHost, "defaults survive")
	})

	t.Run("Environment wins over the file", func(t *testing.T) {
		t.Setenv("PORT", "7070")
		t.Setenv("DB_USER", "env-user")

		cfg, err := Load(path, "dev")
		require.NoError(t, err)

		assert.Equal(t, 7070, cfg.Port)
		assert.Equal(t, "env-user", cfg.DBUser)
	})

	t.Run("Production without a secret is rejected", func(t *testing.T) {
		_, err := Load(path, "production")
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Unknown env", func(t *testing.T) {
		_, err := Load(path, "staging")
		assert.Error(t, err)
	})
}

func TestLoad_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("TOKEN_DURATION", "90m")

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 90*time.Minute, cfg.TokenDuration)
	assert.Equal(t, "postgres://:secret@localhost:5432/adaptfitness?sslmode=disable", cfg.PostgresDSN())
}

func TestLoad_BadPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")

	_, err := Load("", "")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }, true},
		{"no db password", func(c *Config) { c.DBPassword = "" }, true},
		{"port out of range", func(c *Config) { c.Port = 70000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			c.JWTSecret = testSecret
			c.DBPassword = "pw"
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
