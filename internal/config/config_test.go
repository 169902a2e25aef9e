package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, LinkValidationPermissive, cfg.Graph.LinkValidationMode)
	assert.Equal(t, 60, cfg.Graph.SuggestionTTLMinutes)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Tracing.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoadKeepsExplicitEmptyValues(t *testing.T) {
	t.Setenv("APP_PORT", "")
	assert.Equal(t, "", Load().App.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LINK_VALIDATION_MODE", "strict")
	t.Setenv("SUGGESTION_TTL_MINUTES", "5")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test")
	t.Setenv("FRONTEND_URL", "http://frontend.test")

	cfg := Load()

	assert.Equal(t, LinkValidationStrict, cfg.Graph.LinkValidationMode)
	assert.Equal(t, 5, cfg.Graph.SuggestionTTLMinutes)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "http://frontend.test", cfg.App.CorsAllowedOrigins)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Run("unknown link mode", func(t *testing.T) {
		t.Setenv("LINK_VALIDATION_MODE", "lenient")
		assert.Error(t, Load().Validate())
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		t.Setenv("SUGGESTION_TTL_MINUTES", "0")
		assert.Error(t, Load().Validate())
	})

	t.Run("garbage int falls back", func(t *testing.T) {
		t.Setenv("SUGGESTION_TTL_MINUTES", "soon")
		cfg := Load()
		assert.Equal(t, 60, cfg.Graph.SuggestionTTLMinutes)
		assert.NoError(t, cfg.Validate())
	})
}
