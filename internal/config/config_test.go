package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DB_HOST", "db.internal")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "3000", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.DB.Host)
		assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
		assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
		assert.False(t, cfg.S3.Enabled())
		assert.Contains(t, cfg.DB.DSN(), "host=db.internal")
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("origins list", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
	})
}
