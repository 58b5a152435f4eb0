package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "sewinggem")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, 24*time.Hour, cfg.JWT.SessionTokenExpiry)
		assert.Equal(t, "gemma", cfg.Seed.AdminUsername)
		assert.Equal(t, "changethispassword", cfg.Seed.AdminPassword)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
		t.Setenv("SESSION_TOKEN_EXPIRY", "1h")
		t.Setenv("ADMIN_USERNAME", "admin")
		t.Setenv("APP_ENV", "production")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, time.Hour, cfg.JWT.SessionTokenExpiry)
		assert.Equal(t, "admin", cfg.Seed.AdminUsername)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("missing required variable", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_SECRET", "")

		_, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("invalid session expiry", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SESSION_TOKEN_EXPIRY", "soon")

		_, err := Load()

		assert.Error(t, err)
	})
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db",
			Port:     3306,
			User:     "root",
			Password: "secret",
			DBName:   "sewinggem",
		},
	}

	assert.Equal(t, "root:secret@tcp(db:3306)/sewinggem?parseTime=true&charset=utf8mb4", cfg.DSN())
}
